package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

type Product struct {
	DTO
	Name          string         `json:"name"`
	Slug          string         `gorm:"unique;size:120" json:"slug"`
	Tagline       string         `json:"tagline"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	OriginalPrice *float64       `json:"originalPrice"`
	Discount      *string        `json:"discount"`
	Image         string         `gorm:"default:/assets/placeholder.png" json:"image"`
	Features      StringList     `gorm:"type:jsonb" json:"features"`
	Badge         *string        `json:"badge"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Category      string         `gorm:"default:single" json:"category"`
	Scent         *string        `json:"scent"`
	Stock         int            `json:"stock"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

type ProductInput struct {
	Name          string   `json:"name" validate:"required"`
	Tagline       string   `json:"tagline"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice"`
	Discount      *string  `json:"discount"`
	Image         string   `json:"image"`
	Features      []string `json:"features"`
	Badge         *string  `json:"badge"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Category      string   `json:"category"`
	Scent         *string  `json:"scent"`
	Stock         int      `json:"stock"`
	IsActive      *bool    `json:"isActive"`
}
