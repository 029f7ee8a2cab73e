package group

import (
	"contactbook/errs"
	"strings"
)

var (
	ErrGroupNotFound      = errs.Errorf(errs.ENOTFOUND, "group not found")
	ErrNameAlreadyExists  = errs.Errorf(errs.ECONFLICT, "group: name already exists")
	ErrInvalidID          = errs.Errorf(errs.EINVALID, "group id must be a positive integer")
	ErrInvalidContactID   = errs.Errorf(errs.EINVALID, "contact id must be a positive integer")
	ErrMembershipNotFound = errs.Errorf(errs.ENOTFOUND, "contact is not a member of the group")
	ErrMembershipExists   = errs.Errorf(errs.ECONFLICT, "contact is already a member of the group")
	ErrUnknownReference   = errs.Errorf(errs.EFOREIGNKEY, "group or contact does not exist")
)

const ReasonRequired = "is required"

type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (g Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return errs.Invalid(map[string]string{"name": ReasonRequired})
	}
	return nil
}

// ContactGroup links a contact to a group.
type ContactGroup struct {
	ContactID int64 `json:"contactId"`
	GroupID   int64 `json:"groupId"`
}

func (m ContactGroup) Validate() error {
	if m.GroupID <= 0 {
		return ErrInvalidID
	}
	if m.ContactID <= 0 {
		return ErrInvalidContactID
	}
	return nil
}
