package tools

import (
	"sort"
	"strings"

	"shop-assistant-be/pkg/catalog"
)

// ProductsFromBrand lists up to n distinct products whose brand contains the
// given substring (case-insensitive), priciest first. n of -1 means all.
func (t *Toolkit) ProductsFromBrand(brandName string, n int) Result {
	needle := strings.ToLower(brandName)

	var matched []int
	for _, row := range t.catalog.Rows() {
		p, _ := t.catalog.At(row)
		if p.BrandName != "" && strings.Contains(strings.ToLower(p.BrandName), needle) {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return NoMatchf("❌ Không tìm thấy sản phẩm nào từ thương hiệu '%s'.", brandName)
	}

	ranked := t.sortBySalePriceDesc(matched)
	if n == -1 {
		n = len(ranked)
	}
	if n <= 0 {
		n = 3
	}

	unique := UniqueByName(t.catalog, ranked, catalog.FieldSalePrice, n)
	if len(unique) == 0 {
		return NoMatchf("❌ Không tìm thấy sản phẩm phù hợp sau khi loại bỏ trùng lặp. Tổng sản phẩm %s: %d",
			brandName, len(ranked))
	}

	return Answerf("Gợi ý %d sản phẩm từ thương hiệu '%s':\n\n%s",
		len(unique), brandName, t.productLines(unique, catalog.FieldSalePrice))
}

// ProductsSameBrand resolves a product by name substring, then lists up to n
// distinct other products of the same brand, priciest first. The matched
// product's own name is always excluded.
func (t *Toolkit) ProductsSameBrand(productName string, n int) Result {
	if n <= 0 {
		n = 3
	}
	needle := strings.ToLower(productName)

	matchedRow := -1
	for _, row := range t.catalog.Rows() {
		p, _ := t.catalog.At(row)
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matchedRow = row
			break
		}
	}
	if matchedRow < 0 {
		return NoMatchf("❌ Không tìm thấy sản phẩm '%s' trong cơ sở dữ liệu.", productName)
	}

	matched, _ := t.catalog.At(matchedRow)
	if matched.BrandName == "" {
		return MissingDataf("❌ Sản phẩm '%s' không có thông tin thương hiệu.", productName)
	}

	brandNeedle := strings.ToLower(matched.BrandName)
	var sameBrand []int
	for _, row := range t.catalog.Rows() {
		p, _ := t.catalog.At(row)
		if p.Name == matched.Name {
			continue
		}
		if p.BrandName != "" && strings.Contains(strings.ToLower(p.BrandName), brandNeedle) {
			sameBrand = append(sameBrand, row)
		}
	}
	if len(sameBrand) == 0 {
		return NoMatchf("❌ Không tìm thấy sản phẩm nào khác từ thương hiệu '%s'.", matched.BrandName)
	}

	ranked := t.sortBySalePriceDesc(sameBrand)
	unique := UniqueByName(t.catalog, ranked, catalog.FieldSalePrice, n)
	if len(unique) == 0 {
		return NoMatch("❌ Không tìm thấy sản phẩm phù hợp sau khi loại bỏ trùng lặp.")
	}

	return Answerf("Gợi ý %d sản phẩm khác từ thương hiệu '%s':\n%s",
		len(unique), matched.BrandName, t.productLines(unique, catalog.FieldSalePrice))
}

// sortBySalePriceDesc ranks rows by numeric sale price, highest first, with a
// stable order for ties. Rows without a numeric price sink to the end in
// their original relative order.
func (t *Toolkit) sortBySalePriceDesc(rows []int) []int {
	ranked := make([]int, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(a, b int) bool {
		pa, _ := t.catalog.At(ranked[a])
		pb, _ := t.catalog.At(ranked[b])
		va, okA := catalog.Coerce(pa.SalePrice)
		vb, okB := catalog.Coerce(pb.SalePrice)
		if okA != okB {
			return okA
		}
		if !okA {
			return false
		}
		return va > vb
	})
	return ranked
}
