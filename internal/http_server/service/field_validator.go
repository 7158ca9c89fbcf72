// Package service
package service

import (
	"strings"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/half-nothing/airport-booking/internal/utils"
)

type FieldValidator struct {
	Min, Max          int
	ErrShort, ErrLong *ApiStatus
}

func (v *FieldValidator) CheckString(value string) *ApiStatus {
	length := len(value)
	if length > v.Max {
		return v.ErrLong
	}
	if length < v.Min {
		return v.ErrShort
	}
	return nil
}

type Validators struct {
	password *FieldValidator
	email    *FieldValidator
}

func NewValidators(config *c.HttpServerLimit) *Validators {
	return &Validators{
		password: &FieldValidator{
			Min:      config.PasswordLengthMin,
			Max:      config.PasswordLengthMax,
			ErrShort: &ApiStatus{StatusName: "PASSWORD_TOO_SHORT", Description: "password is too short", HttpCode: BadRequest},
			ErrLong:  &ApiStatus{StatusName: "PASSWORD_TOO_LONG", Description: "password is too long", HttpCode: BadRequest},
		},
		email: &FieldValidator{
			Min:      config.EmailLengthMin,
			Max:      config.EmailLengthMax,
			ErrShort: &ApiStatus{StatusName: "EMAIL_TOO_SHORT", Description: "email is too short", HttpCode: BadRequest},
			ErrLong:  &ApiStatus{StatusName: "EMAIL_TOO_LONG", Description: "email is too long", HttpCode: BadRequest},
		},
	}
}

var ErrEmailFormat = ApiStatus{StatusName: "EMAIL_FORMAT_ERROR", Description: "enter a valid email address", HttpCode: BadRequest}

func (validators *Validators) CheckEmail(email string) *ApiStatus {
	if res := validators.email.CheckString(email); res != nil {
		return res
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t\r\n") {
		return &ErrEmailFormat
	}
	return nil
}

func (validators *Validators) CheckPassword(password string) *ApiStatus {
	return validators.password.CheckString(password)
}

type field struct {
	name    string
	present bool
}

// requireFields fails on the first absent field; PUT replaces a whole record so every field is required
func requireFields(fields ...field) error {
	for _, f := range fields {
		if !f.present {
			return &operation.FieldError{Field: f.name, Reason: "is required"}
		}
	}
	return nil
}

// parseOptionalBool accepts true/false/1/0 and treats an empty value as unset
func parseOptionalBool(name, value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	if result := utils.StrToOptionalBool(value); result != nil {
		return result, nil
	}
	return nil, &operation.FieldError{Field: name, Reason: "must be true or false"}
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", time.DateOnly}

// parseOptionalTime accepts RFC 3339 or a bare date, read as UTC
func parseOptionalTime(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			parsed = parsed.UTC()
			return &parsed, nil
		}
	}
	return nil, &operation.FieldError{Field: name, Reason: "must be an RFC 3339 timestamp or a YYYY-MM-DD date"}
}
