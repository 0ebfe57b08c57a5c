package tools

import (
	"io"
	"log"

	"shop-assistant-be/internal/repository/memory"
	"shop-assistant-be/pkg/catalog"
)

// newTestToolkit builds a toolkit over an in-memory catalog with a fresh
// session repository and no retrieval or LLM collaborators.
func newTestToolkit(products []catalog.Product) *Toolkit {
	return NewToolkit(
		catalog.NewStore(products),
		memory.NewSessionRepository(0),
		nil,
		nil,
		log.New(io.Discard, "", 0),
	)
}

// testProducts is the shared fixture: four rows, one tie at the top price,
// two rows sharing a brand.
func testProducts() []catalog.Product {
	return []catalog.Product{
		{Name: "Laptop A", BrandName: "Asus", SalePrice: "10"},
		{Name: "Tablet B", BrandName: "Samsung", SalePrice: "20"},
		{Name: "Phone C", BrandName: "Apple", SalePrice: "30"},
		{Name: "Phone D", BrandName: "Apple", SalePrice: "30"},
	}
}
