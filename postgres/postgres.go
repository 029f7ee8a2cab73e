package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool
}

// DSN renders the options as a libpq key/value connection string.
func (opts Options) DSN() string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}

func NewConnection(opts Options) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(opts.DSN()), &gorm.Config{
		TranslateError: true,
	})
}

// AutoMigrate creates the contact book schema from the gorm models. Postgres
// deployments use the SQL files in migrations/ instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&ContactModel{}, &GroupModel{}, &ContactGroupModel{})
}

// Ping checks that the underlying connection pool answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
