package user

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateUserRequest is the payload for creating a user. IsActive defaults to
// true and Role to DefaultRole when omitted.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsActive *bool  `json:"is_active"`
	Role     string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 50).Error("username must not exceed 50 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.FullName,
			validation.Length(0, 100).Error("full name must not exceed 100 characters"),
		),
	)
}

// ToUser builds the domain record with defaults applied.
func (r CreateUserRequest) ToUser() User {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	role := r.Role
	if role == "" {
		role = DefaultRole
	}
	return User{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		IsActive: active,
		Role:     role,
	}
}

// UpdateUserRequest is a partial patch: nil fields are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
	Role     *string `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.By(notBlank("username must not be empty")),
			validation.Length(1, 50).Error("username must not exceed 50 characters"),
		),
		validation.Field(&r.Email,
			validation.By(notBlank("email must not be empty")),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.FullName,
			validation.Length(0, 100).Error("full name must not exceed 100 characters"),
		),
	)
}

// notBlank rejects a present-but-empty string patch. Non-required ozzo rules
// (Length, is.Email) treat "" as empty and skip it, so without this check a
// patch could blank out a mandatory field.
func notBlank(message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(*string)
		if !ok || s == nil {
			return nil
		}
		if *s == "" {
			return errors.New(message)
		}
		return nil
	}
}

// IsEmpty reports whether the patch carries no fields at all.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Username == nil && r.Email == nil && r.FullName == nil &&
		r.IsActive == nil && r.Role == nil
}

// Apply merges the non-nil patch fields into u.
func (r UpdateUserRequest) Apply(u *User) {
	if r.Username != nil {
		u.Username = *r.Username
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.FullName != nil {
		u.FullName = *r.FullName
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
}
