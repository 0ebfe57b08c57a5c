package agent

import (
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// fallbackToolCall is the deterministic keyword router used when the model is
// unreachable or returns garbage. It mirrors the selection rules the model is
// given, so behavior degrades rather than breaks without an LLM.
func fallbackToolCall(message string) *ToolCall {
	q := strings.ToLower(message)
	numbers := parseNumbers(q)

	call := &ToolCall{Tool: ToolSearchText, Field: "salePrice", N: 3, Query: message}

	switch {
	case containsAny(q, "đắt nhất", "cao nhất", "most expensive", "highest"):
		call.Tool = ToolHighestPrice

	case containsAny(q, "rẻ nhất", "thấp nhất", "cheapest", "lowest"):
		call.Tool = ToolLowestPrice

	case len(numbers) >= 2 && containsAny(q, "từ", "đến", "khoảng", "between", "range"):
		call.Tool = ToolPriceRange
		call.MinPrice = numbers[0]
		max := numbers[1]
		call.MaxPrice = &max

	case containsAny(q, "gần", "near", "around") && (len(numbers) >= 1 || containsAny(q, "món này", "mon nay")):
		call.Tool = ToolSuggestPrice
		if len(numbers) >= 1 {
			ref := numbers[0]
			call.RefPrice = &ref
		}

	case containsAny(q, "cùng thương hiệu", "cùng brand", "same brand"):
		call.Tool = ToolSameBrand
		call.ProductName = strings.TrimSpace(stripKeywords(message, "cùng thương hiệu", "cùng brand", "same brand", "sản phẩm"))

	case containsAny(q, "thương hiệu", "hãng", "from brand"):
		call.Tool = ToolFromBrand
		call.BrandName = strings.TrimSpace(stripKeywords(message, "thương hiệu", "hãng", "from brand", "sản phẩm", "từ"))
	}

	return call
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func parseNumbers(q string) []float64 {
	var numbers []float64
	for _, m := range numberPattern.FindAllString(q, -1) {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			numbers = append(numbers, v)
		}
	}
	return numbers
}

func stripKeywords(s string, keywords ...string) string {
	for _, kw := range keywords {
		for {
			i := strings.Index(strings.ToLower(s), kw)
			if i < 0 {
				break
			}
			s = s[:i] + s[i+len(kw):]
		}
	}
	return s
}
