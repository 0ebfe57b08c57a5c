package store

// Document is a retrieved snippet from the vector store, with the metadata
// the search tool needs for source attribution.
type Document struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Content  string                 `json:"content"`
	Score    float32                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// DefaultSessionID is used for callers that do not carry their own
// conversation identifier. They share one session, which preserves the
// single-caller behavior of a process-wide state.
const DefaultSessionID = "default"

// Session is the per-conversation context the price tools share. It carries
// just enough to resolve anaphoric references like "món này": the last
// product a tool settled on and the price field it was ranked by.
type Session struct {
	ID string `json:"id"`

	// LastProductRow is a row index into the catalog, -1 when no product
	// has been referenced yet.
	LastProductRow int `json:"last_product_row"`

	// LastPriceField is "salePrice" or "listedPrice", empty when unset.
	LastPriceField string `json:"last_price_field"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:             id,
		LastProductRow: -1,
	}
}

// Remember records the product and price field a tool resolved to.
func (s *Session) Remember(row int, field string) {
	s.LastProductRow = row
	s.LastPriceField = field
}

// HasLastProduct reports whether an anaphoric reference can be resolved.
func (s *Session) HasLastProduct() bool {
	return s.LastProductRow >= 0
}
