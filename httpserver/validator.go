package httpserver

import (
	"errors"
	"reflect"
	"strings"

	"contactbook/contact"
	"contactbook/errs"

	"github.com/go-playground/validator/v10"
)

const (
	reasonBlank    = "must not be blank"
	reasonPositive = "must be a positive integer"
)

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("contactname", validateContactName)
	_ = v.RegisterValidation("contactphone", validateContactPhone)
	return &CustomValidator{validate: v}
}

// Validate reports every failing field at once as an EINVALID error.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Errorf(errs.EINVALID, "validation error")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = fe.StructField()
		}
		if _, seen := fields[field]; !seen {
			fields[field] = reason(fe)
		}
	}
	return errs.Invalid(fields)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return contact.ReasonRequired
	case "notblank":
		return reasonBlank
	case "contactname":
		if isEmpty(fe.Value()) {
			return contact.ReasonRequired
		}
		return contact.ReasonNameLength
	case "contactphone":
		if isEmpty(fe.Value()) {
			return contact.ReasonRequired
		}
		return contact.ReasonPhone
	case "gt", "min":
		return reasonPositive
	}
	return "failed on " + fe.Tag()
}

func isEmpty(v interface{}) bool {
	switch s := v.(type) {
	case string:
		return s == ""
	case *string:
		return s == nil || *s == ""
	}
	return false
}

func stringField(fl validator.FieldLevel) (string, bool) {
	if fl.Field().Kind() != reflect.String {
		return "", false
	}
	return fl.Field().String(), true
}

func validateNotBlank(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && strings.TrimSpace(s) != ""
}

func validateContactName(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && contact.ValidName(s)
}

func validateContactPhone(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && contact.ValidPhone(s)
}
