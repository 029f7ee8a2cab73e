package postgres_test

import (
	"contactbook/postgres"
	"contactbook/sqlite"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory store with the contact book schema.
func newTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := sqlite.NewConnection(sqlite.Options{Path: sqlite.MemoryPath, Quiet: true})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func mustCloseDBConnection(db *gorm.DB) {
	sqlDB, _ := db.DB()
	sqlDB.Close()
}

func mustCreateContact(t testing.TB, db *gorm.DB, name, phone string) postgres.ContactModel {
	t.Helper()
	model := postgres.ContactModel{Name: name, Phone: phone}
	require.NoError(t, db.Create(&model).Error)
	return model
}

func mustCreateGroup(t testing.TB, db *gorm.DB, name string) postgres.GroupModel {
	t.Helper()
	model := postgres.GroupModel{Name: name}
	require.NoError(t, db.Create(&model).Error)
	return model
}

func mustLink(t testing.TB, db *gorm.DB, c postgres.ContactModel, g postgres.GroupModel) {
	t.Helper()
	err := db.Exec("INSERT INTO contact_groups (contact_id, group_id) VALUES (?, ?)", c.ID, g.ID).Error
	require.NoError(t, err)
}

func countRows(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}
