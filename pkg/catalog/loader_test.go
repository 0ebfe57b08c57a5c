package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"salePrice", "salePrice"},
		{"weight/rawUnit", "weight_rawUnit"},
		{"weight.value", "weight_value"},
		{"brand name", "brand_name"},
		{"đánh giá", "__nh_gi_"},
	}

	for _, tt := range tests {
		if got := SanitizeColumn(tt.in); got != tt.want {
			t.Errorf("SanitizeColumn(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	csvData := "name,brandName,salePrice,listedPrice,currency\n" +
		"Laptop A,Apple,999.99,1299.00,USD\n" +
		",Dell,500,600,USD\n" +
		"Phone B,Samsung,299,,USD\n" +
		"Tablet C,Lenovo,199,249,USD\n"

	store, err := LoadCSV(writeTempCSV(t, csvData))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}

	// Row 2 has no name, row 3 has no listedPrice: both dropped.
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	first, ok := store.At(0)
	if !ok {
		t.Fatal("At(0) not found")
	}
	if first.Name != "Laptop A" || first.SalePrice != "999.99" {
		t.Errorf("unexpected first row: %+v", first)
	}

	second, ok := store.At(1)
	if !ok {
		t.Fatal("At(1) not found")
	}
	if second.Name != "Tablet C" {
		t.Errorf("second row = %q, want Tablet C", second.Name)
	}
}

func TestLoadCSVSanitizesHeader(t *testing.T) {
	csvData := "name,brand Name,salePrice\n" +
		"Widget,Acme,10\n"

	store, err := LoadCSV(writeTempCSV(t, csvData))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}

	// "brand Name" sanitizes to brand_Name, not brandName: the retained
	// brandName column stays empty for this file.
	p, _ := store.At(0)
	if p.BrandName != "" {
		t.Errorf("BrandName = %q, want empty", p.BrandName)
	}
	if p.Name != "Widget" {
		t.Errorf("Name = %q, want Widget", p.Name)
	}
}

func TestNumericColumn(t *testing.T) {
	store := NewStore([]Product{
		{Name: "A", SalePrice: "10"},
		{Name: "B", SalePrice: "oops"},
		{Name: "C", SalePrice: "30.5"},
		{Name: "D", SalePrice: ""},
	})

	rows, values := store.NumericColumn(FieldSalePrice)
	if len(rows) != 2 || len(values) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0] != 0 || rows[1] != 2 {
		t.Errorf("rows = %v, want [0 2]", rows)
	}
	if values[0] != 10 || values[1] != 30.5 {
		t.Errorf("values = %v, want [10 30.5]", values)
	}
}
