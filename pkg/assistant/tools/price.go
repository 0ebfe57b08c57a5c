package tools

import (
	"sort"
	"strings"

	"shop-assistant-be/pkg/catalog"
)

// HighestPrice finds the product with the maximum value of the selected price
// field. Ties keep the first occurrence in catalog order. The resolved product
// becomes the session's anaphoric referent.
func (t *Toolkit) HighestPrice(sessionID, field string) Result {
	return t.priceExtremum(sessionID, field, true)
}

// LowestPrice is the minimum counterpart of HighestPrice.
func (t *Toolkit) LowestPrice(sessionID, field string) Result {
	return t.priceExtremum(sessionID, field, false)
}

func (t *Toolkit) priceExtremum(sessionID, field string, highest bool) Result {
	field = normalizeField(field)

	rows, values := t.catalog.NumericColumn(field)
	if len(rows) == 0 {
		return MissingDataf("❌ Không tìm thấy dữ liệu trong %s.", field)
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if highest && values[i] > values[best] {
			best = i
		}
		if !highest && values[i] < values[best] {
			best = i
		}
	}

	row := rows[best]
	product, _ := t.catalog.At(row)
	t.session(sessionID).Remember(row, field)

	superlative := "rẻ nhất"
	if highest {
		superlative = "đắt nhất"
	}
	return Answerf("Sản phẩm %s theo %s là '%s' từ thương hiệu '%s' với giá %s %s.",
		superlative, field, displayName(product), displayBrand(product),
		product.Field(field), product.CurrencyOrDefault())
}

// SuggestByPrice finds up to n distinct products whose price is closest to a
// reference price. When no explicit reference is given, a "món này" marker in
// the query resolves it from the session's last product, and the session's
// last price field overrides the selector.
func (t *Toolkit) SuggestByPrice(sessionID, query, field string, n int, refPrice *float64) Result {
	field = normalizeField(field)
	if n <= 0 {
		n = 1
	}
	sess := t.session(sessionID)

	var ref float64
	switch {
	case refPrice != nil:
		ref = *refPrice
	case hasAnaphoricMarker(query) && sess.HasLastProduct():
		last, ok := t.catalog.At(sess.LastProductRow)
		if !ok {
			return MissingData(msgNoReferencePrice)
		}
		refField := sess.LastPriceField
		if refField == "" {
			refField = field
		}
		v, numeric := catalog.Coerce(last.Field(refField))
		if !numeric {
			return MissingData(msgNoReferencePrice)
		}
		ref = v
		field = refField
	default:
		return MissingData(msgNoReferencePrice)
	}

	rows, values := t.catalog.NumericColumn(field)
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da := abs(values[order[a]] - ref)
		db := abs(values[order[b]] - ref)
		return da < db
	})

	ranked := make([]int, len(order))
	for i, idx := range order {
		ranked[i] = rows[idx]
	}

	unique := UniqueByName(t.catalog, ranked, field, n)
	if len(unique) == 0 {
		return NoMatch(msgNoMatchingProducts)
	}

	sess.Remember(unique[0], field)

	return Answerf("Gợi ý %d sản phẩm gần %s (%s):\n%s",
		len(unique), catalog.FormatNumber(ref), field, t.productLines(unique, field))
}

// RecommendByRange finds up to n distinct products priced inside the
// inclusive [minPrice, maxPrice] band, cheapest first. It never touches the
// session.
func (t *Toolkit) RecommendByRange(field string, n int, minPrice float64, maxPrice *float64) Result {
	field = normalizeField(field)
	if n <= 0 {
		n = 3
	}
	if maxPrice == nil {
		return MissingData("❌ Chưa có giá tối đa. Hãy nêu rõ khoảng giá, ví dụ 'từ 100 đến 500'.")
	}

	rows, values := t.catalog.NumericColumn(field)
	var inBand []int
	var bandValues []float64
	for i, row := range rows {
		if values[i] >= minPrice && values[i] <= *maxPrice {
			inBand = append(inBand, row)
			bandValues = append(bandValues, values[i])
		}
	}
	if len(inBand) == 0 {
		return NoMatch(msgNoMatchingProducts)
	}

	order := make([]int, len(inBand))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return bandValues[order[a]] < bandValues[order[b]]
	})
	ranked := make([]int, len(order))
	for i, idx := range order {
		ranked[i] = inBand[idx]
	}

	unique := UniqueByName(t.catalog, ranked, field, n)
	if len(unique) == 0 {
		return NoMatch(msgNoMatchingProducts)
	}

	return Answerf("Gợi ý %d sản phẩm trong khoảng %s - %s (%s):\n%s",
		len(unique), catalog.FormatNumber(minPrice), catalog.FormatNumber(*maxPrice),
		field, t.productLines(unique, field))
}

const (
	msgNoReferencePrice   = "❌ Chưa có giá tham chiếu. Hãy nêu rõ một mức giá hoặc hỏi dựa trên 'món này'."
	msgNoMatchingProducts = "❌ Không tìm thấy sản phẩm phù hợp."
)

// hasAnaphoricMarker detects the "this one" reference, with or without
// diacritics.
func hasAnaphoricMarker(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(q, "món này") || strings.Contains(q, "mon nay")
}

func (t *Toolkit) productLines(rows []int, field string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		p, ok := t.catalog.At(row)
		if !ok {
			continue
		}
		lines = append(lines, "- "+p.Name+" ("+p.Field(field)+" "+p.CurrencyOrDefault()+")")
	}
	return strings.Join(lines, "\n")
}

func displayName(p catalog.Product) string {
	if p.Name == "" {
		return "N/A"
	}
	return p.Name
}

func displayBrand(p catalog.Product) string {
	if p.BrandName == "" {
		return "N/A"
	}
	return p.BrandName
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
