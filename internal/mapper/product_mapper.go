package mapper

import (
	"encoding/json"
	"time"

	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(e *model.Product) *entity.Product {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	var labels []string
	if len(e.Labels) > 0 {
		_ = json.Unmarshal(e.Labels, &labels)
	}

	return &entity.Product{
		Id:            e.Id,
		Name:          e.Name,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Discount:      e.Discount,
		Rating:        e.Rating,
		SoldCount:     e.SoldCount,
		Image:         e.Image,
		Labels:        labels,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     e.DeletedAt.Valid,
	}
}

func (m *ProductMapper) ToModel(e *entity.Product) *model.Product {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	var labels datatypes.JSON
	if e.Labels != nil {
		raw, err := json.Marshal(e.Labels)
		if err == nil {
			labels = raw
		}
	}

	return &model.Product{
		Id:            e.Id,
		Name:          e.Name,
		Price:         e.Price,
		OriginalPrice: e.OriginalPrice,
		Discount:      e.Discount,
		Rating:        e.Rating,
		SoldCount:     e.SoldCount,
		Image:         e.Image,
		Labels:        labels,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, e := range products {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *ProductMapper) ToModels(products []*entity.Product) []*model.Product {
	models := make([]*model.Product, len(products))
	for i, e := range products {
		models[i] = m.ToModel(e)
	}
	return models
}
