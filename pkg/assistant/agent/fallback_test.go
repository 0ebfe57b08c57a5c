package agent

import (
	"reflect"
	"testing"
)

func TestFallbackToolCall(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantTool string
	}{
		{"highest price", "sản phẩm nào đắt nhất", ToolHighestPrice},
		{"highest price english", "which product is the most expensive", ToolHighestPrice},
		{"lowest price", "món nào rẻ nhất", ToolLowestPrice},
		{"price range", "gợi ý sản phẩm từ 100 đến 500", ToolPriceRange},
		{"near a price", "sản phẩm gần 250", ToolSuggestPrice},
		{"near this one", "sản phẩm giá gần món này", ToolSuggestPrice},
		{"same brand", "sản phẩm cùng thương hiệu với Laptop A", ToolSameBrand},
		{"from brand", "sản phẩm thương hiệu VEVOR", ToolFromBrand},
		{"free text default", "mô tả của Laptop A", ToolSearchText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := fallbackToolCall(tt.message)
			if call.Tool != tt.wantTool {
				t.Errorf("fallbackToolCall(%q).Tool = %q, want %q", tt.message, call.Tool, tt.wantTool)
			}
		})
	}
}

func TestFallbackToolCallRangeBounds(t *testing.T) {
	call := fallbackToolCall("gợi ý sản phẩm từ 100 đến 500")
	if call.MinPrice != 100 {
		t.Errorf("MinPrice = %v, want 100", call.MinPrice)
	}
	if call.MaxPrice == nil || *call.MaxPrice != 500 {
		t.Errorf("MaxPrice = %v, want 500", call.MaxPrice)
	}
}

func TestFallbackToolCallReferencePrice(t *testing.T) {
	call := fallbackToolCall("sản phẩm gần 250")
	if call.RefPrice == nil || *call.RefPrice != 250 {
		t.Errorf("RefPrice = %v, want 250", call.RefPrice)
	}

	call = fallbackToolCall("sản phẩm giá gần món này")
	if call.RefPrice != nil {
		t.Errorf("anaphoric query should leave RefPrice unset, got %v", *call.RefPrice)
	}
}

func TestFallbackToolCallBrandName(t *testing.T) {
	call := fallbackToolCall("sản phẩm thương hiệu VEVOR")
	if call.BrandName != "VEVOR" {
		t.Errorf("BrandName = %q, want %q", call.BrandName, "VEVOR")
	}
}

func TestFallbackToolCallKeepsOriginalQuery(t *testing.T) {
	message := "Mô tả của Laptop A"
	call := fallbackToolCall(message)
	if call.Query != message {
		t.Errorf("Query = %q, want the original message", call.Query)
	}
	if call.N != 3 || call.Field != "salePrice" {
		t.Errorf("defaults = (n=%d, field=%q), want (n=3, field=salePrice)", call.N, call.Field)
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"từ 100 đến 500", []float64{100, 500}},
		{"gần 19.99", []float64{19.99}},
		{"không có số", nil},
	}

	for _, tt := range tests {
		if got := parseNumbers(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseNumbers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
