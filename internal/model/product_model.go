package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Price         int64          `gorm:"not null"` // VND
	OriginalPrice *int64         `gorm:""`
	Discount      *int           `gorm:""` // percent
	Rating        *float64       `gorm:""`
	SoldCount     *int           `gorm:""`
	Image         string         `gorm:"type:varchar(500)"`
	Labels        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
