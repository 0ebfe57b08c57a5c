package tools

import (
	"strings"
	"testing"

	"shop-assistant-be/pkg/catalog"
)

func TestHighestPrice(t *testing.T) {
	tk := newTestToolkit(testProducts())

	got := tk.HighestPrice("s1", "salePrice")
	if !got.OK() {
		t.Fatalf("HighestPrice returned kind %v: %s", got.Kind, got.Text)
	}
	want := "Sản phẩm đắt nhất theo salePrice là 'Phone C' từ thương hiệu 'Apple' với giá 30 USD."
	if got.Text != want {
		t.Errorf("HighestPrice = %q, want %q", got.Text, want)
	}
}

func TestHighestPriceTieKeepsFirstRow(t *testing.T) {
	// Rows 2 and 3 both carry the maximum price; row 2 must win.
	tk := newTestToolkit(testProducts())

	got := tk.HighestPrice("s1", "salePrice")
	if !strings.Contains(got.Text, "'Phone C'") {
		t.Errorf("tie should resolve to the first catalog row, got %q", got.Text)
	}
	if strings.Contains(got.Text, "'Phone D'") {
		t.Errorf("tie resolved to a later row: %q", got.Text)
	}
}

func TestLowestPrice(t *testing.T) {
	tk := newTestToolkit(testProducts())

	got := tk.LowestPrice("s1", "salePrice")
	want := "Sản phẩm rẻ nhất theo salePrice là 'Laptop A' từ thương hiệu 'Asus' với giá 10 USD."
	if got.Text != want {
		t.Errorf("LowestPrice = %q, want %q", got.Text, want)
	}
}

func TestPriceExtremumMissingData(t *testing.T) {
	tk := newTestToolkit([]catalog.Product{
		{Name: "Laptop A", BrandName: "Asus"},
		{Name: "Tablet B", BrandName: "Samsung", SalePrice: "n/a"},
	})

	got := tk.HighestPrice("s1", "salePrice")
	if got.Kind != KindMissingData {
		t.Fatalf("kind = %v, want KindMissingData", got.Kind)
	}
	want := "❌ Không tìm thấy dữ liệu trong salePrice."
	if got.Text != want {
		t.Errorf("HighestPrice = %q, want %q", got.Text, want)
	}
}

func TestSuggestByPriceExplicitReference(t *testing.T) {
	tk := newTestToolkit(testProducts())

	ref := 21.0
	got := tk.SuggestByPrice("s1", "gợi ý sản phẩm tầm 21", "salePrice", 1, &ref)
	if !got.OK() {
		t.Fatalf("SuggestByPrice returned kind %v: %s", got.Kind, got.Text)
	}
	want := "Gợi ý 1 sản phẩm gần 21 (salePrice):\n- Tablet B (20 USD)"
	if got.Text != want {
		t.Errorf("SuggestByPrice = %q, want %q", got.Text, want)
	}
}

func TestSuggestByPriceExplicitReferenceIgnoresSession(t *testing.T) {
	tk := newTestToolkit(testProducts())

	// The session now remembers Phone C at 30.
	tk.HighestPrice("s1", "salePrice")

	ref := 10.0
	got := tk.SuggestByPrice("s1", "gợi ý món này tầm 10", "salePrice", 1, &ref)
	if !strings.Contains(got.Text, "Laptop A") {
		t.Errorf("explicit reference should win over the session, got %q", got.Text)
	}
}

func TestSuggestByPriceAnaphoricReference(t *testing.T) {
	tk := newTestToolkit(testProducts())

	tk.HighestPrice("s1", "salePrice")

	got := tk.SuggestByPrice("s1", "gợi ý sản phẩm giá gần món này", "salePrice", 2, nil)
	if !got.OK() {
		t.Fatalf("SuggestByPrice returned kind %v: %s", got.Kind, got.Text)
	}
	if !strings.Contains(got.Text, "gần 30") {
		t.Errorf("reference price should come from the remembered product, got %q", got.Text)
	}
	if !strings.Contains(got.Text, "Phone C") || !strings.Contains(got.Text, "Phone D") {
		t.Errorf("nearest products to 30 should be the two phones, got %q", got.Text)
	}
}

func TestSuggestByPriceNoReference(t *testing.T) {
	tk := newTestToolkit(testProducts())

	tests := []struct {
		name  string
		query string
	}{
		{"no marker and no session", "gợi ý sản phẩm"},
		{"marker but empty session", "gợi ý sản phẩm giá gần món này"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tk.SuggestByPrice("fresh-"+tt.name, tt.query, "salePrice", 1, nil)
			if got.Kind != KindMissingData {
				t.Fatalf("kind = %v, want KindMissingData", got.Kind)
			}
			if got.Text != msgNoReferencePrice {
				t.Errorf("SuggestByPrice = %q, want %q", got.Text, msgNoReferencePrice)
			}
		})
	}
}

func TestRecommendByRange(t *testing.T) {
	tk := newTestToolkit(testProducts())

	max := 30.0
	got := tk.RecommendByRange("salePrice", 5, 15, &max)
	if !got.OK() {
		t.Fatalf("RecommendByRange returned kind %v: %s", got.Kind, got.Text)
	}
	want := "Gợi ý 3 sản phẩm trong khoảng 15 - 30 (salePrice):\n" +
		"- Tablet B (20 USD)\n- Phone C (30 USD)\n- Phone D (30 USD)"
	if got.Text != want {
		t.Errorf("RecommendByRange = %q, want %q", got.Text, want)
	}
}

func TestRecommendByRangeBoundsAreInclusive(t *testing.T) {
	tk := newTestToolkit(testProducts())

	max := 20.0
	got := tk.RecommendByRange("salePrice", 5, 10, &max)
	if !strings.Contains(got.Text, "Laptop A") || !strings.Contains(got.Text, "Tablet B") {
		t.Errorf("products at both bounds should qualify, got %q", got.Text)
	}
	if strings.Contains(got.Text, "Phone") {
		t.Errorf("products above the band leaked in: %q", got.Text)
	}
}

func TestRecommendByRangeMissingMax(t *testing.T) {
	tk := newTestToolkit(testProducts())

	got := tk.RecommendByRange("salePrice", 3, 100, nil)
	if got.Kind != KindMissingData {
		t.Fatalf("kind = %v, want KindMissingData", got.Kind)
	}
	want := "❌ Chưa có giá tối đa. Hãy nêu rõ khoảng giá, ví dụ 'từ 100 đến 500'."
	if got.Text != want {
		t.Errorf("RecommendByRange = %q, want %q", got.Text, want)
	}
}

func TestRecommendByRangeNoMatch(t *testing.T) {
	tk := newTestToolkit(testProducts())

	max := 200.0
	got := tk.RecommendByRange("salePrice", 3, 100, &max)
	if got.Kind != KindNoMatch {
		t.Fatalf("kind = %v, want KindNoMatch", got.Kind)
	}
	if got.Text != msgNoMatchingProducts {
		t.Errorf("RecommendByRange = %q, want %q", got.Text, msgNoMatchingProducts)
	}
}

func TestHasAnaphoricMarker(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"sản phẩm giá gần món này", true},
		{"san pham gia gan mon nay", true},
		{"Giá Gần MÓN NÀY", true},
		{"gợi ý sản phẩm tầm 100", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hasAnaphoricMarker(tt.query); got != tt.want {
			t.Errorf("hasAnaphoricMarker(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
