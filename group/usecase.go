package group

import (
	"context"
	"contactbook/contact"
)

type Service interface {
	AddGroup(ctx context.Context, g Group) (Group, error)
	ListGroups(ctx context.Context) ([]Group, error)
	GetGroup(ctx context.Context, id int64) (Group, error)
	RenameGroup(ctx context.Context, id int64, name string) (Group, error)
	DeleteGroup(ctx context.Context, id int64) error
	ListMembers(ctx context.Context, id int64) ([]contact.Contact, error)
	AddMember(ctx context.Context, m ContactGroup) (ContactGroup, error)
	RemoveMember(ctx context.Context, m ContactGroup) error
}

type Repository interface {
	CreateGroup(ctx context.Context, g Group) (Group, error)
	AllGroups(ctx context.Context) ([]Group, error)
	GetGroup(ctx context.Context, id int64) (Group, error)
	UpdateGroup(ctx context.Context, g Group) (Group, error)
	DeleteGroup(ctx context.Context, id int64) error
	FindContactsByGroup(ctx context.Context, id int64) ([]contact.Contact, error)
	AddContact(ctx context.Context, m ContactGroup) error
	RemoveContact(ctx context.Context, m ContactGroup) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AddGroup(ctx context.Context, g Group) (Group, error) {
	if err := g.Validate(); err != nil {
		return Group{}, err
	}
	return uc.r.CreateGroup(ctx, g)
}

func (uc *Usecase) ListGroups(ctx context.Context) ([]Group, error) {
	return uc.r.AllGroups(ctx)
}

func (uc *Usecase) GetGroup(ctx context.Context, id int64) (Group, error) {
	if id <= 0 {
		return Group{}, ErrInvalidID
	}
	return uc.r.GetGroup(ctx, id)
}

func (uc *Usecase) RenameGroup(ctx context.Context, id int64, name string) (Group, error) {
	if id <= 0 {
		return Group{}, ErrInvalidID
	}
	g := Group{ID: id, Name: name}
	if err := g.Validate(); err != nil {
		return Group{}, err
	}
	return uc.r.UpdateGroup(ctx, g)
}

func (uc *Usecase) DeleteGroup(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return uc.r.DeleteGroup(ctx, id)
}

// ListMembers returns the contacts of a group, or ErrGroupNotFound when the
// group itself is missing.
func (uc *Usecase) ListMembers(ctx context.Context, id int64) ([]contact.Contact, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return uc.r.FindContactsByGroup(ctx, id)
}

// AddMember links a contact to a group. Existence of both sides is enforced
// by the store and reported as ErrUnknownReference.
func (uc *Usecase) AddMember(ctx context.Context, m ContactGroup) (ContactGroup, error) {
	if err := m.Validate(); err != nil {
		return ContactGroup{}, err
	}
	if err := uc.r.AddContact(ctx, m); err != nil {
		return ContactGroup{}, err
	}
	return m, nil
}

func (uc *Usecase) RemoveMember(ctx context.Context, m ContactGroup) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return uc.r.RemoveContact(ctx, m)
}
