package postgres

import (
	"context"
	"contactbook/contact"
	"contactbook/group"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupModel represents the database model for groups
type GroupModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

func (GroupModel) TableName() string {
	return "groups"
}

// ContactGroupModel is the membership join row. Deleting either side
// removes the row.
type ContactGroupModel struct {
	ContactID uint         `gorm:"primaryKey;autoIncrement:false"`
	GroupID   uint         `gorm:"primaryKey;autoIncrement:false;index"`
	Contact   ContactModel `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
	Group     GroupModel   `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (ContactGroupModel) TableName() string {
	return "contact_groups"
}

// GroupRepository implements group.Repository interface
type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) CreateGroup(ctx context.Context, g group.Group) (group.Group, error) {
	model := GroupModel{Name: g.Name}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return group.Group{}, translateError(err, nil, group.ErrNameAlreadyExists, nil)
	}
	return toDomainGroup(model), nil
}

func (r *GroupRepository) AllGroups(ctx context.Context) ([]group.Group, error) {
	var models []GroupModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	groups := make([]group.Group, len(models))
	for i, model := range models {
		groups[i] = toDomainGroup(model)
	}
	return groups, nil
}

func (r *GroupRepository) GetGroup(ctx context.Context, id int64) (group.Group, error) {
	var model GroupModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return group.Group{}, translateError(err, group.ErrGroupNotFound, nil, nil)
	}
	return toDomainGroup(model), nil
}

func (r *GroupRepository) UpdateGroup(ctx context.Context, g group.Group) (group.Group, error) {
	var model GroupModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&GroupModel{}).Where("id = ?", g.ID).Update("name", g.Name)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return group.ErrGroupNotFound
		}
		return tx.First(&model, g.ID).Error
	})
	if err != nil {
		return group.Group{}, translateError(err, group.ErrGroupNotFound, group.ErrNameAlreadyExists, nil)
	}
	return toDomainGroup(model), nil
}

func (r *GroupRepository) DeleteGroup(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&GroupModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return group.ErrGroupNotFound
	}
	return nil
}

// FindContactsByGroup returns the members of a group ordered by name.
func (r *GroupRepository) FindContactsByGroup(ctx context.Context, id int64) ([]contact.Contact, error) {
	db := r.db.WithContext(ctx)

	var g GroupModel
	if err := db.Select("id").First(&g, id).Error; err != nil {
		return nil, translateError(err, group.ErrGroupNotFound, nil, nil)
	}

	var models []ContactModel
	err := db.Model(&ContactModel{}).
		Joins("JOIN contact_groups ON contact_groups.contact_id = contacts.id").
		Where("contact_groups.group_id = ?", id).
		Order("contacts.name ASC").
		Order("contacts.id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toDomainContacts(models), nil
}

// AddContact inserts the membership row. The store rejects unknown contacts
// or groups through its foreign keys.
func (r *GroupRepository) AddContact(ctx context.Context, m group.ContactGroup) error {
	model := ContactGroupModel{
		ContactID: uint(m.ContactID),
		GroupID:   uint(m.GroupID),
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model).Error
	return translateError(err, nil, group.ErrMembershipExists, group.ErrUnknownReference)
}

func (r *GroupRepository) RemoveContact(ctx context.Context, m group.ContactGroup) error {
	result := r.db.WithContext(ctx).
		Where("contact_id = ? AND group_id = ?", m.ContactID, m.GroupID).
		Delete(&ContactGroupModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return group.ErrMembershipNotFound
	}
	return nil
}

func toDomainGroup(model GroupModel) group.Group {
	return group.Group{
		ID:   int64(model.ID),
		Name: model.Name,
	}
}
