package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProductID struct {
	ProductID uuid.UUID
}

func (s ByProductID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("product_id = ?", s.ProductID)
}

type NameContains struct {
	Name string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(s.Name) + "%"
	return db.Where("LOWER(name) LIKE ?", pattern)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
