package httpserver

import (
	"contactbook/contact"
	"contactbook/group"
)

type AddContactRequest struct {
	Name  string `json:"name" validate:"required,contactname"`
	Phone string `json:"phone" validate:"required,contactphone"`
}

func (r AddContactRequest) ToContact() contact.Contact {
	return contact.Contact{
		Name:  r.Name,
		Phone: r.Phone,
	}
}

// UpdateContactRequest carries a partial update. Absent fields stay nil.
type UpdateContactRequest struct {
	Name  *string `json:"name" validate:"omitnil,contactname"`
	Phone *string `json:"phone" validate:"omitnil,contactphone"`
}

func (r UpdateContactRequest) ToPatch() contact.Patch {
	return contact.Patch{
		Name:  r.Name,
		Phone: r.Phone,
	}
}

type GroupRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

func (r GroupRequest) ToGroup() group.Group {
	return group.Group{Name: r.Name}
}

type AddMemberRequest struct {
	ContactID int64 `json:"contactId" validate:"gt=0"`
}
