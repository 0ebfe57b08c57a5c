package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var columnSanitizer = regexp.MustCompile(`[^0-9a-zA-Z_]`)

// requiredColumns is the fixed set a row must fill to be included.
// Rows missing any of these are dropped at load time.
var requiredColumns = []string{
	"additionalProperties", "brandName", "breadcrumbs", "color", "currency",
	"current_depth", "description", "descriptionRaw", "features", "imageUrls",
	"inStock", "listedPrice", "material", "name", "new_path", "nodeName",
	"rating", "reviewCount", "salePrice", "size", "style", "variants",
	"weight_rawUnit", "weight_unit", "weight_value",
}

// SanitizeColumn rewrites a raw header cell so every character outside
// [0-9a-zA-Z_] becomes an underscore.
func SanitizeColumn(name string) string {
	return columnSanitizer.ReplaceAllString(name, "_")
}

// LoadCSV reads the catalog source file, sanitizes its header, drops rows
// with any required column blank, and retains only the columns the tools use.
func LoadCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[SanitizeColumn(col)] = i
	}

	var products []Product
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		cell := func(col string) string {
			i, ok := colIndex[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		complete := true
		for _, col := range requiredColumns {
			if _, present := colIndex[col]; !present {
				continue
			}
			if cell(col) == "" {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}

		products = append(products, Product{
			Name:                 cell("name"),
			BrandName:            cell("brandName"),
			Description:          cell("description"),
			DescriptionRaw:       cell("descriptionRaw"),
			Features:             cell("features"),
			SalePrice:            cell("salePrice"),
			ListedPrice:          cell("listedPrice"),
			Material:             cell("material"),
			Rating:               cell("rating"),
			Size:                 cell("size"),
			Style:                cell("style"),
			Breadcrumbs:          cell("breadcrumbs"),
			AdditionalProperties: cell("additionalProperties"),
			Currency:             cell("currency"),
			ImageURLs:            cell("imageUrls"),
		})
	}

	return NewStore(products), nil
}
