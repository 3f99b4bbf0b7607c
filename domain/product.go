package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id            TEXT PRIMARY KEY,
//     name          TEXT,
//     title         TEXT,
//     description   TEXT,
//     price         BIGINT NOT NULL,
//     promo_price   BIGINT,
//     images        JSONB,
//     video_url     TEXT,
//     category      TEXT,
//     subcategory   TEXT,
//     stock         BIGINT DEFAULT 0,
//     is_ya_ba_boss BOOLEAN DEFAULT FALSE,
//     created_at    TIMESTAMPTZ DEFAULT NOW(),
//     updated_at    TIMESTAMPTZ DEFAULT NOW()
// );

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Product is a catalog entry as supplied by sellers. Prices are whole FCFA.
type Product struct {
	ID          string                      `gorm:"column:id;primaryKey;type:text" json:"id"`
	Name        string                      `gorm:"column:name;type:text" json:"name"`
	Title       string                      `gorm:"column:title;type:text" json:"title,omitempty"`
	Description string                      `gorm:"column:description;type:text" json:"description,omitempty"`
	Price       int64                       `gorm:"column:price;not null" json:"price"`
	PromoPrice  *int64                      `gorm:"column:promo_price" json:"promo_price,omitempty"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images;type:jsonb" json:"images"`
	VideoURL    *string                     `gorm:"column:video_url;type:text" json:"video_url,omitempty"`
	Category    string                      `gorm:"column:category;type:text;index" json:"category,omitempty"`
	Subcategory string                      `gorm:"column:subcategory;type:text" json:"subcategory,omitempty"`
	Stock       int64                       `gorm:"column:stock;default:0" json:"stock"`
	IsYaBaBoss  bool                        `gorm:"column:is_ya_ba_boss;default:false" json:"is_ya_ba_boss"`
	CreatedAt   time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// DisplayName returns the name, falling back to the title.
func (p Product) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Title
}

// OnPromotion reports whether the promo price undercuts the regular price.
func (p Product) OnPromotion() bool {
	return p.PromoPrice != nil && p.Price > 0 && *p.PromoPrice < p.Price
}

// DiscountPercent is (price - promo) / price * 100, or 0 when not on promotion.
func (p Product) DiscountPercent() float64 {
	if !p.OnPromotion() {
		return 0
	}
	return float64(p.Price-*p.PromoPrice) / float64(p.Price) * 100
}

func (p Product) HasVideo() bool {
	return p.VideoURL != nil && *p.VideoURL != ""
}
