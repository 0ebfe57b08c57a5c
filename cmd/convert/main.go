package main

import (
	"encoding/json"
	"flag"
	"log"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"shop-assistant-be/internal/dto"
	"shop-assistant-be/pkg/catalog"

	"github.com/fatih/color"
)

// USD prices from the source catalog are converted to VND.
const usdToVnd = 24000

var quotedURLPattern = regexp.MustCompile(`"(https?://[^"]+)"`)

func main() {
	inPath := flag.String("in", "data/products.csv", "source catalog CSV")
	outPath := flag.String("out", "data/processed_products.json", "output JSON for the seeder")
	flag.Parse()

	cat, err := catalog.LoadCSV(*inPath)
	if err != nil {
		log.Fatalf("Error: failed to load catalog: %v", err)
	}

	color.Cyan("Converting %d catalog rows from %s", cat.Len(), *inPath)

	var seeds []dto.SeedProduct
	skipped := 0

	for _, row := range cat.Rows() {
		p, _ := cat.At(row)

		sale, ok := parseMoney(p.SalePrice)
		if p.Name == "" || !ok {
			skipped++
			continue
		}

		seed := dto.SeedProduct{
			Name:  p.Name,
			Price: int64(math.Round(sale * usdToVnd)),
			Image: firstImage(p.ImageURLs),
		}

		if listed, ok := parseMoney(p.ListedPrice); ok && listed > 0 {
			original := int64(math.Round(listed * usdToVnd))
			seed.OriginalPrice = &original
			discount := int(math.Round((1 - sale/listed) * 100))
			seed.Discount = &discount
		}

		if rating, err := strconv.ParseFloat(strings.TrimSpace(p.Rating), 64); err == nil {
			seed.Rating = &rating
		}

		seed.Labels = buildLabels(p)
		seeds = append(seeds, seed)
	}

	out, err := json.MarshalIndent(seeds, "", "  ")
	if err != nil {
		log.Fatalf("Error: failed to marshal output: %v", err)
	}
	if err := os.WriteFile(*outPath, out, 0644); err != nil {
		log.Fatalf("Error: failed to write %s: %v", *outPath, err)
	}

	if skipped > 0 {
		color.Yellow("Skipped %d rows without a name or parsable price", skipped)
	}
	color.Green("✅ Wrote %d products to %s", len(seeds), *outPath)
}

// parseMoney reads a raw price cell, tolerating "$1,299.00" style values.
func parseMoney(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// firstImage extracts one usable URL from the imageURLs cell, which may be
// a JSON array, a quoted list or a plain comma separated string.
func firstImage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err == nil && len(urls) > 0 {
		return strings.TrimSpace(urls[0])
	}

	if m := quotedURLPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}

	first := strings.SplitN(raw, ",", 2)[0]
	return strings.Trim(strings.TrimSpace(first), `[]"`)
}

func buildLabels(p catalog.Product) []string {
	var labels []string
	if p.BrandName != "" {
		labels = append(labels, p.BrandName)
	}
	if category := firstBreadcrumb(p.Breadcrumbs); category != "" {
		labels = append(labels, category)
	}
	return append(labels, "amazon", "imported")
}

// firstBreadcrumb pulls the top level category out of a "name: X, name: Y"
// breadcrumb string.
func firstBreadcrumb(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if idx := strings.Index(raw, "name:"); idx >= 0 {
		raw = raw[idx+len("name:"):]
	}
	if idx := strings.Index(raw, ","); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}
