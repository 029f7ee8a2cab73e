package postgres

import (
	"context"
	"contactbook/contact"

	"gorm.io/gorm"
)

// ContactModel represents the database model for contacts
type ContactModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null;uniqueIndex"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ContactRepository implements contact.Repository interface
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// CreateContact creates a new contact in the database
func (r *ContactRepository) CreateContact(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	model := ContactModel{
		Name:  c.Name,
		Phone: c.Phone,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return contact.Contact{}, translateError(err, nil, contact.ErrPhoneAlreadyExists, nil)
	}
	return toDomainContact(model), nil
}

// FindContacts returns a page of contacts ordered alphabetically by name.
func (r *ContactRepository) FindContacts(ctx context.Context, p contact.Page) ([]contact.Contact, error) {
	var models []ContactModel
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainContacts(models), nil
}

func (r *ContactRepository) GetContact(ctx context.Context, id int64) (contact.Contact, error) {
	var model ContactModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return contact.Contact{}, translateError(err, contact.ErrContactNotFound, nil, nil)
	}
	return toDomainContact(model), nil
}

// UpdateContact writes the fields present in p and returns the stored row.
func (r *ContactRepository) UpdateContact(ctx context.Context, id int64, p contact.Patch) (contact.Contact, error) {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Phone != nil {
		updates["phone"] = *p.Phone
	}

	var model ContactModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ContactModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return contact.ErrContactNotFound
		}
		return tx.First(&model, id).Error
	})
	if err != nil {
		return contact.Contact{}, translateError(err, contact.ErrContactNotFound, contact.ErrPhoneAlreadyExists, nil)
	}
	return toDomainContact(model), nil
}

// DeleteContact removes a contact; its group memberships go with it.
func (r *ContactRepository) DeleteContact(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ContactModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}

func toDomainContact(model ContactModel) contact.Contact {
	return contact.Contact{
		ID:    int64(model.ID),
		Name:  model.Name,
		Phone: model.Phone,
	}
}

func toDomainContacts(models []ContactModel) []contact.Contact {
	contacts := make([]contact.Contact, len(models))
	for i, model := range models {
		contacts[i] = toDomainContact(model)
	}
	return contacts
}
