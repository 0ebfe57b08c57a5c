package tools

import (
	"regexp"
	"strings"
	"unicode"

	"shop-assistant-be/pkg/catalog"
)

// fieldRule maps a query keyword to the catalog column it asks for.
type fieldRule struct {
	keyword string
	field   string
}

// fieldRules is the ordered intent table. More specific attribute keywords
// come before the generic ones so "rating của X" never reads as a price
// question. English and Vietnamese forms of the same attribute sit together.
var fieldRules = []fieldRule{
	{"rating", "rating"},
	{"đánh giá", "rating"},
	{"price", catalog.FieldSalePrice},
	{"giá", catalog.FieldSalePrice},
	{"features", "features"},
	{"đặc điểm", "features"},
	{"description", "description"},
	{"mô tả", "description"},
	{"brand", "brandName"},
	{"thương hiệu", "brandName"},
	{"size", "size"},
	{"kích thước", "size"},
	{"material", "material"},
	{"chất liệu", "material"},
}

var fieldLabels = map[string]string{
	"material":            "Chất liệu",
	"features":            "Đặc điểm",
	"description":         "Mô tả",
	catalog.FieldSalePrice: "Giá bán",
	"currency":            "Loại tiền",
	"rating":              "Đánh giá",
	"brandName":           "Thương hiệu",
	"breadcrumbs":         "Danh mục",
	"style":               "Phong cách",
	"size":                "Kích thước",
}

// summaryFields is the fixed display order of the product summary.
type summaryField struct {
	field string
	label string
}

var summaryFields = []summaryField{
	{"material", "Chất liệu"},
	{"features", "Đặc điểm"},
	{"description", "Mô tả"},
	{catalog.FieldSalePrice, "Giá bán"},
	{"currency", "Loại tiền"},
	{"rating", "Đánh giá"},
	{"brandName", "Thương hiệu"},
	{"breadcrumbs", "Danh mục"},
	{"style", "Phong cách"},
	{"size", "Kích thước"},
}

// DetectField scans the query for the first field keyword in rule order,
// using word-boundary matching that understands Vietnamese letters. It
// returns the column name and the matched keyword, or ok=false.
func DetectField(query string) (field, keyword string, ok bool) {
	q := strings.ToLower(query)
	for _, rule := range fieldRules {
		if containsWord(q, rule.keyword) {
			return rule.field, rule.keyword, true
		}
	}
	return "", "", false
}

// containsWord reports whether needle occurs in haystack bounded by
// non-word runes. The regexp \b class is ASCII-only, so boundaries are
// checked by hand to keep "giá" from matching inside "giảm giáo trình" etc.
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		i := strings.Index(haystack[start:], needle)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(needle)
		if !wordRuneBefore(haystack, i) && !wordRuneAt(haystack, end) {
			return true
		}
		start = i + 1
		if start >= len(haystack) {
			return false
		}
	}
}

func wordRuneBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	runes := []rune(s[:i])
	r := runes[len(runes)-1]
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordRuneAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	for _, r := range s[i:] {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractProductName strips the detected field keyword, the connector words,
// and surrounding quotes from the query, leaving the candidate product name.
func ExtractProductName(query, keyword string) string {
	name := query
	if keyword != "" {
		name = removeWord(name, keyword)
	}
	name = removeWord(name, "của")
	name = removeWord(name, "sản phẩm")
	name = removeWord(name, "product")
	name = strings.NewReplacer(`"`, "", "'", "").Replace(name)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))
}

// removeWord deletes whole-word occurrences of w, case-insensitively.
func removeWord(s, w string) string {
	lower := strings.ToLower(s)
	w = strings.ToLower(w)
	var b strings.Builder
	for start := 0; start < len(s); {
		i := strings.Index(lower[start:], w)
		if i < 0 {
			b.WriteString(s[start:])
			break
		}
		i += start
		end := i + len(w)
		if wordRuneBefore(lower, i) || wordRuneAt(lower, end) {
			b.WriteString(s[start : i+1])
			start = i + 1
			continue
		}
		b.WriteString(s[start:i])
		start = end
	}
	return b.String()
}

// nameResolver is one strategy of the tabular match cascade: given the
// cleaned candidate name it either resolves to catalog rows or passes.
type nameResolver func(cat *catalog.Store, name string) []int

// nameCascade is the ordered chain of match strategies, tried until one
// yields rows. Specificity decreases down the chain.
var nameCascade = []nameResolver{
	matchFullName,
	matchFirstThreeTokens,
	matchFirstToken,
	matchAnyToken,
}

// ResolveProductName runs the match cascade and returns the matching rows of
// the first successful strategy, or nil when every strategy passes.
func ResolveProductName(cat *catalog.Store, name string) []int {
	if len([]rune(name)) < 3 {
		return nil
	}
	for _, resolve := range nameCascade {
		if rows := resolve(cat, name); len(rows) > 0 {
			return rows
		}
	}
	return nil
}

func matchFullName(cat *catalog.Store, name string) []int {
	if len([]rune(name)) <= 3 {
		return nil
	}
	return nameContains(cat, name)
}

func matchFirstThreeTokens(cat *catalog.Store, name string) []int {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) > 3 {
		tokens = tokens[:3]
	}
	return nameContains(cat, strings.Join(tokens, " "))
}

func matchFirstToken(cat *catalog.Store, name string) []int {
	tokens := strings.Fields(name)
	if len(tokens) == 0 || len([]rune(tokens[0])) <= 2 {
		return nil
	}
	return nameContains(cat, tokens[0])
}

func matchAnyToken(cat *catalog.Store, name string) []int {
	for _, token := range strings.Fields(name) {
		if len([]rune(token)) <= 2 {
			continue
		}
		if rows := nameContains(cat, token); len(rows) > 0 {
			return rows
		}
	}
	return nil
}

func nameContains(cat *catalog.Store, needle string) []int {
	needle = strings.ToLower(needle)
	var rows []int
	for _, row := range cat.Rows() {
		p, _ := cat.At(row)
		if strings.Contains(strings.ToLower(p.Name), needle) {
			rows = append(rows, row)
		}
	}
	return rows
}
