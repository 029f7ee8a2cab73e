package postgres

import (
	"errors"

	"gorm.io/gorm"
)

// translateError maps the dialect-neutral gorm errors to domain errors.
// A nil target leaves that kind of error untouched.
func translateError(err, notFound, duplicated, foreignKey error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicated != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicated
	case foreignKey != nil && errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKey
	}
	return err
}
