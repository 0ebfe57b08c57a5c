package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/repository/specification"
	"shop-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewProductService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IProductService {
	return &productService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product := entity.Product{
		Id:            uuid.New(),
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Discount:      req.Discount,
		Rating:        req.Rating,
		SoldCount:     req.SoldCount,
		Image:         req.Image,
		Labels:        req.Labels,
		CreatedAt:     time.Now(),
	}

	err := uow.ProductRepository().Create(ctx, &product)
	if err != nil {
		return nil, err
	}

	if err := s.publishEmbedMessage(ctx, product.Id); err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{
		Id: product.Id,
	}, nil
}

func (s *productService) Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}
	return toProductResponse(product), nil
}

func (s *productService) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProductRepository()

	var specs []specification.Specification
	if req.Search != "" {
		specs = append(specs, specification.NameContains{Name: req.Search})
	}

	total, err := repo.Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append([]specification.Specification{}, specs...)
	listSpecs = append(listSpecs, specification.OrderBy{Field: "created_at", Desc: true})
	if req.Limit > 0 {
		listSpecs = append(listSpecs, specification.Pagination{Limit: req.Limit, Offset: req.Offset})
	}

	products, err := repo.FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}

	return &dto.ListProductsResponse{
		Products: responses,
		Total:    total,
	}, nil
}

func (s *productService) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	now := time.Now()
	product.Name = req.Name
	product.Price = req.Price
	product.OriginalPrice = req.OriginalPrice
	product.Discount = req.Discount
	product.Rating = req.Rating
	product.SoldCount = req.SoldCount
	product.Image = req.Image
	product.Labels = req.Labels
	product.UpdatedAt = &now

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	if err := s.publishEmbedMessage(ctx, product.Id); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ProductEmbeddingRepository().DeleteByProductId(ctx, id); err != nil {
		return err
	}
	if err := uow.ProductRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *productService) publishEmbedMessage(ctx context.Context, productId uuid.UUID) error {
	payload := dto.PublishEmbedProductMessage{
		ProductId: productId,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payloadJson)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:            p.Id,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
		Rating:        p.Rating,
		SoldCount:     p.SoldCount,
		Image:         p.Image,
		Labels:        p.Labels,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
