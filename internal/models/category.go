package models

import (
	"strings"
	"unicode/utf8"

	"github.com/finance-dashboard/backend/internal/client"
	"gorm.io/gorm"
)

// Category groups transactions of one type.
type Category struct {
	DefaultModel
	Name string
	Icon string
	Type client.CategoryType
}

// BeforeSave trims whitespace and verifies the category.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)

	if utf8.RuneCountInString(c.Name) < 2 {
		return ErrNameTooShort
	}

	if !c.Type.Valid() {
		return ErrTypeInvalid
	}

	return nil
}
