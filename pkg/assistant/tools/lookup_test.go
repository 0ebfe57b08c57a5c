package tools

import (
	"reflect"
	"testing"

	"shop-assistant-be/pkg/catalog"
)

func TestDetectField(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantField   string
		wantKeyword string
		wantOk      bool
	}{
		{
			name:        "vietnamese price keyword",
			query:       "giá của sản phẩm Laptop A",
			wantField:   catalog.FieldSalePrice,
			wantKeyword: "giá",
			wantOk:      true,
		},
		{
			name:        "english price keyword",
			query:       "what is the price of Laptop A",
			wantField:   catalog.FieldSalePrice,
			wantKeyword: "price",
			wantOk:      true,
		},
		{
			name:        "rating wins over the price keyword it contains",
			query:       "đánh giá của sản phẩm Laptop A",
			wantField:   "rating",
			wantKeyword: "đánh giá",
			wantOk:      true,
		},
		{
			name:        "material keyword",
			query:       "chất liệu của áo sơ mi",
			wantField:   "material",
			wantKeyword: "chất liệu",
			wantOk:      true,
		},
		{
			name:   "keyword inside a longer word does not match",
			query:  "oversized shirt",
			wantOk: false,
		},
		{
			name:   "accented keyword inside a longer word does not match",
			query:  "chương trình giáo dục",
			wantOk: false,
		},
		{
			name:   "no keyword",
			query:  "cho tôi xem Laptop A",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, keyword, ok := DetectField(tt.query)
			if ok != tt.wantOk {
				t.Fatalf("DetectField(%q) ok = %v, want %v", tt.query, ok, tt.wantOk)
			}
			if field != tt.wantField || keyword != tt.wantKeyword {
				t.Errorf("DetectField(%q) = (%q, %q), want (%q, %q)",
					tt.query, field, keyword, tt.wantField, tt.wantKeyword)
			}
		})
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     bool
	}{
		{"giá bao nhiêu", "giá", true},
		{"hỏi về giá", "giá", true},
		{"giáo trình", "giá", false},
		{"size m", "size", true},
		{"oversized", "size", false},
		{"size", "size", true},
		{"the price tag", "price", true},
		{"priceless", "price", false},
	}

	for _, tt := range tests {
		if got := containsWord(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("containsWord(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

func TestExtractProductName(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		keyword string
		want    string
	}{
		{
			name:    "strips keyword and connectors",
			query:   "giá của sản phẩm Laptop A",
			keyword: "giá",
			want:    "Laptop A",
		},
		{
			name:    "strips surrounding quotes",
			query:   `giá của "Laptop A"`,
			keyword: "giá",
			want:    "Laptop A",
		},
		{
			name:    "no keyword detected",
			query:   "sản phẩm Tablet B",
			keyword: "",
			want:    "Tablet B",
		},
		{
			name:    "connector inside a longer word is kept",
			query:   "description of productive laptop",
			keyword: "description",
			want:    "of productive laptop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractProductName(tt.query, tt.keyword); got != tt.want {
				t.Errorf("ExtractProductName(%q, %q) = %q, want %q", tt.query, tt.keyword, got, tt.want)
			}
		})
	}
}

func TestResolveProductName(t *testing.T) {
	cat := catalog.NewStore([]catalog.Product{
		{Name: "Laptop A Pro"},
		{Name: "Tablet B"},
		{Name: "Gaming Laptop X"},
	})

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{
			name:  "full name match",
			query: "Tablet B",
			want:  []int{1},
		},
		{
			name:  "first token fallback finds every laptop",
			query: "Laptop Z Ultra",
			want:  []int{0, 2},
		},
		{
			name:  "any token fallback",
			query: "Zz Tablet",
			want:  []int{1},
		},
		{
			name:  "too short to resolve",
			query: "ab",
			want:  nil,
		},
		{
			name:  "no strategy matches",
			query: "Washing Machine",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveProductName(cat, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveProductName(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
