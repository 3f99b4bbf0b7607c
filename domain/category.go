package domain

import (
	"errors"
	"time"
)

// CREATE TABLE public.categories (
//     category_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     position    INT DEFAULT 0,
//     active      BOOLEAN DEFAULT TRUE,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCategory  = errors.New("invalid category")
)

// Category is a storefront banner category. Name is free text and is matched
// against product categories with the fuzzy matcher, not by foreign key.
type Category struct {
	CategoryID uint64    `gorm:"primaryKey;column:category_id;autoIncrement" json:"category_id"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	Position   int       `gorm:"column:position;default:0" json:"position"`
	Active     bool      `gorm:"column:active" json:"active"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
