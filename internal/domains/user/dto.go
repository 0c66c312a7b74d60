package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegisterRequest carries the fields needed to create an account. The
// password arrives in plaintext at the boundary and is digested before it
// reaches storage.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Admin    bool   `json:"admin"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 64),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 128),
		),
	)
}
