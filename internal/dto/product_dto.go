package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Price         int64    `json:"price" validate:"required,min=0"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	SoldCount     *int     `json:"sold_count,omitempty"`
	Image         string   `json:"image" validate:"max=500"`
	Labels        []string `json:"labels,omitempty"`
}

type CreateProductResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateProductRequest struct {
	Id            uuid.UUID `json:"-"`
	Name          string    `json:"name" validate:"required,max=255"`
	Price         int64     `json:"price" validate:"required,min=0"`
	OriginalPrice *int64    `json:"original_price,omitempty"`
	Discount      *int      `json:"discount,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	SoldCount     *int      `json:"sold_count,omitempty"`
	Image         string    `json:"image" validate:"max=500"`
	Labels        []string  `json:"labels,omitempty"`
}

type ProductResponse struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Price         int64      `json:"price"`
	OriginalPrice *int64     `json:"original_price,omitempty"`
	Discount      *int       `json:"discount,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	SoldCount     *int       `json:"sold_count,omitempty"`
	Image         string     `json:"image,omitempty"`
	Labels        []string   `json:"labels,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type ListProductsRequest struct {
	Search string `query:"search"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ListProductsResponse struct {
	Products []*ProductResponse `json:"products"`
	Total    int64              `json:"total"`
}

// PublishEmbedProductMessage is the payload queued when a product needs
// its embeddings (re)built.
type PublishEmbedProductMessage struct {
	ProductId uuid.UUID `json:"product_id"`
}

// SeedProduct is one record of processed_products.json, the handoff file
// between the CSV converter and the database seeder.
type SeedProduct struct {
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Discount      *int     `json:"discount,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Image         string   `json:"image,omitempty"`
	Labels        []string `json:"labels"`
}
