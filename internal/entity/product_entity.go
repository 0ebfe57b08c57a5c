package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Price         int64
	OriginalPrice *int64
	Discount      *int
	Rating        *float64
	SoldCount     *int
	Image         string
	Labels        []string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
