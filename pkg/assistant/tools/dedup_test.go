package tools

import (
	"reflect"
	"testing"

	"shop-assistant-be/pkg/catalog"
)

func TestUniqueByName(t *testing.T) {
	cat := catalog.NewStore([]catalog.Product{
		{Name: "Laptop A", SalePrice: "10"},
		{Name: "Tablet B", SalePrice: "20"},
		{Name: "Laptop A", SalePrice: "30"},
		{Name: "", SalePrice: "40"},
		{Name: "Phone C", SalePrice: "50"},
	})

	tests := []struct {
		name string
		rows []int
		n    int
		want []int
	}{
		{
			name: "keeps first occurrence of a duplicate name",
			rows: []int{0, 1, 2, 4},
			n:    10,
			want: []int{0, 1, 4},
		},
		{
			name: "rank order decides which duplicate survives",
			rows: []int{2, 1, 0, 4},
			n:    10,
			want: []int{2, 1, 4},
		},
		{
			name: "skips rows with a blank name",
			rows: []int{3, 0, 1},
			n:    10,
			want: []int{0, 1},
		},
		{
			name: "stops once n rows are collected",
			rows: []int{0, 1, 4},
			n:    2,
			want: []int{0, 1},
		},
		{
			name: "ignores out of range rows",
			rows: []int{0, 99, 1},
			n:    10,
			want: []int{0, 1},
		},
		{
			name: "empty input",
			rows: nil,
			n:    3,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueByName(cat, tt.rows, catalog.FieldSalePrice, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UniqueByName(%v, %d) = %v, want %v", tt.rows, tt.n, got, tt.want)
			}
		})
	}
}
