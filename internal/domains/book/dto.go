package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
	)
}

// UpdateBookRequest is a partial patch; nil fields keep their current
// values.
type UpdateBookRequest struct {
	Title        *string `json:"title,omitempty"`
	Author       *string `json:"author,omitempty"`
	Availability *bool   `json:"availability,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title must not be empty"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.NilOrNotEmpty.Error("author must not be empty"),
			validation.Length(1, 255),
		),
	)
}

// IsEmpty reports whether the patch carries no fields at all.
func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Author == nil && r.Availability == nil
}
