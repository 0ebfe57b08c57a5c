package catalog

// Price field selectors accepted by the price-based tools.
const (
	FieldSalePrice   = "salePrice"
	FieldListedPrice = "listedPrice"
)

// Product is one catalog row. All values are kept as raw strings the way
// they appear in the source file; numeric views are derived on demand.
type Product struct {
	Name                 string
	BrandName            string
	Description          string
	DescriptionRaw       string
	Features             string
	SalePrice            string
	ListedPrice          string
	Material             string
	Rating               string
	Size                 string
	Style                string
	Breadcrumbs          string
	AdditionalProperties string
	Currency             string
	ImageURLs            string
}

// Field returns the raw value of a column by its sanitized column name.
// Unknown names return an empty string.
func (p Product) Field(name string) string {
	switch name {
	case "name":
		return p.Name
	case "brandName":
		return p.BrandName
	case "description":
		return p.Description
	case "descriptionRaw":
		return p.DescriptionRaw
	case "features":
		return p.Features
	case FieldSalePrice:
		return p.SalePrice
	case FieldListedPrice:
		return p.ListedPrice
	case "material":
		return p.Material
	case "rating":
		return p.Rating
	case "size":
		return p.Size
	case "style":
		return p.Style
	case "breadcrumbs":
		return p.Breadcrumbs
	case "additionalProperties":
		return p.AdditionalProperties
	case "currency":
		return p.Currency
	case "imageUrls":
		return p.ImageURLs
	}
	return ""
}

// CurrencyOrDefault mirrors the dataset convention of assuming USD when the
// currency column is blank.
func (p Product) CurrencyOrDefault() string {
	if p.Currency == "" {
		return "USD"
	}
	return p.Currency
}

// Store holds the loaded catalog. It is immutable after construction, so
// concurrent reads need no locking. Rows are addressed by their stable index.
type Store struct {
	products []Product
}

func NewStore(products []Product) *Store {
	return &Store{products: products}
}

func (s *Store) Len() int {
	return len(s.products)
}

// At returns the row at index i. The boolean is false when i is out of range.
func (s *Store) At(i int) (Product, bool) {
	if i < 0 || i >= len(s.products) {
		return Product{}, false
	}
	return s.products[i], true
}

// Rows returns every row index in catalog order.
func (s *Store) Rows() []int {
	rows := make([]int, len(s.products))
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// NumericColumn returns the rows whose value of field parses as a number,
// in catalog order, together with the parsed values. Rows with missing or
// malformed values are excluded.
func (s *Store) NumericColumn(field string) (rows []int, values []float64) {
	for i, p := range s.products {
		v, ok := Coerce(p.Field(field))
		if !ok {
			continue
		}
		rows = append(rows, i)
		values = append(values, v)
	}
	return rows, values
}
