package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProductEmbedding struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductId      uuid.UUID `gorm:"type:uuid;index"`
	ChunkIndex     int
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
