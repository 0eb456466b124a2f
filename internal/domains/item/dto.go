package item

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateItemRequest is the payload for creating an item. IsAvailable defaults
// to true and Tags to an empty list when omitted.
type CreateItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	IsAvailable *bool    `json:"is_available"`
	Tags        []string `json:"tags"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100).Error("name must not exceed 100 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500).Error("description must not exceed 500 characters"),
		),
		validation.Field(&r.Price,
			validation.Required.Error("price is required"),
			validation.Min(0.0).Exclusive().Error("price must be positive"),
		),
		validation.Field(&r.Category,
			validation.Length(0, 50).Error("category must not exceed 50 characters"),
		),
	)
}

// ToItem builds the domain record with defaults applied.
func (r CreateItemRequest) ToItem() Item {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return Item{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		IsAvailable: available,
		Tags:        tags,
	}
}

// UpdateItemRequest is a partial patch: nil fields are left untouched.
// Unknown JSON fields are rejected at bind time, not silently merged.
type UpdateItemRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	IsAvailable *bool     `json:"is_available"`
	Tags        *[]string `json:"tags"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.By(notBlank("name must not be empty")),
			validation.Length(1, 100).Error("name must not exceed 100 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500).Error("description must not exceed 500 characters"),
		),
		validation.Field(&r.Price,
			validation.By(positivePrice),
		),
		validation.Field(&r.Category,
			validation.Length(0, 50).Error("category must not exceed 50 characters"),
		),
	)
}

// positivePrice rejects a present price <= 0. Threshold rules like Min treat
// 0 as an empty value and skip it, so the zero case needs an explicit check.
func positivePrice(value interface{}) error {
	p, ok := value.(*float64)
	if !ok || p == nil {
		return nil
	}
	if *p <= 0 {
		return errors.New("price must be positive")
	}
	return nil
}

// notBlank rejects a present-but-empty string patch. Length(1, n) skips ""
// for the same empty-value reason Min skips 0.
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
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.Category == nil && r.IsAvailable == nil && r.Tags == nil
}

// Apply merges the non-nil patch fields into it.
func (r UpdateItemRequest) Apply(it *Item) {
	if r.Name != nil {
		it.Name = *r.Name
	}
	if r.Description != nil {
		it.Description = *r.Description
	}
	if r.Price != nil {
		it.Price = *r.Price
	}
	if r.Category != nil {
		it.Category = *r.Category
	}
	if r.IsAvailable != nil {
		it.IsAvailable = *r.IsAvailable
	}
	if r.Tags != nil {
		it.Tags = *r.Tags
	}
}
