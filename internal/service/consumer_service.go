package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/internal/entity"
	"shop-assistant-be/internal/repository/specification"
	"shop-assistant-be/internal/repository/unitofwork"
	"shop-assistant-be/pkg/embedding"
	"shop-assistant-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	// ProcessProduct rebuilds the embeddings for a single product.
	// Returns ErrProductGone when the product no longer exists.
	ProcessProduct(ctx context.Context, productId uuid.UUID) error
}

var ErrProductGone = errors.New("product not found")

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	chunkSize         int
	chunkOverlap      int
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	chunkSize int,
	chunkOverlap int,
) IConsumerService {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 {
		chunkOverlap = 100
	}
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedProductMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing product embedding for ProductId: %s", payload.ProductId)

	if err := cs.ProcessProduct(ctx, payload.ProductId); err != nil {
		if errors.Is(err, ErrProductGone) {
			log.Printf("[ERROR] Product not found: %s", payload.ProductId)
			msg.Ack() // Product deleted? Ack.
			return
		}
		log.Printf("[ERROR] Failed to process product %s: %v", payload.ProductId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	log.Printf("[SUCCESS] Product processed: %s", payload.ProductId)
	msg.Ack()
}

func (cs *consumerService) ProcessProduct(ctx context.Context, productId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: productId})
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return ErrProductGone
	}

	content := buildProductDocument(product)

	log.Printf("[INFO] Generating embeddings for product %s (content length: %d)", productId, len(content))

	chunks := utils.SplitText(content, cs.chunkSize, cs.chunkOverlap)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.ProductEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return fmt.Errorf("embed chunk %d: %w", i, err)
		}

		newEmbeddings = append(newEmbeddings, &entity.ProductEmbedding{
			Id:             uuid.New(),
			ProductId:      product.Id,
			ChunkIndex:     i,
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.ProductEmbeddingRepository().DeleteByProductId(ctx, product.Id); err != nil {
		return fmt.Errorf("delete old embeddings: %w", err)
	}

	if len(newEmbeddings) > 0 {
		if err := uow.ProductEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			return fmt.Errorf("create embeddings: %w", err)
		}
	}

	return uow.Commit()
}

// buildProductDocument flattens a product into the text indexed for retrieval.
func buildProductDocument(p *entity.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Price: %d VND\n", p.Price)
	if p.OriginalPrice != nil {
		fmt.Fprintf(&b, "Original Price: %d VND\n", *p.OriginalPrice)
	}
	if p.Discount != nil {
		fmt.Fprintf(&b, "Discount: %d%%\n", *p.Discount)
	}
	if p.Rating != nil {
		fmt.Fprintf(&b, "Rating: %.1f\n", *p.Rating)
	}
	if p.SoldCount != nil {
		fmt.Fprintf(&b, "Sold: %d\n", *p.SoldCount)
	}
	if len(p.Labels) > 0 {
		fmt.Fprintf(&b, "Labels: %s\n", strings.Join(p.Labels, ", "))
	}
	return b.String()
}
