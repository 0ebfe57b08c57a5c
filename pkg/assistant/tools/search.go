package tools

import (
	"context"
	"fmt"
	"strings"
)

const (
	// retrieveTopK is the fixed fan-out of the vector retrieval fallback.
	retrieveTopK = 3

	// The fallback scans at most the top scanLimit documents and keeps at
	// most keepLimit unique sources.
	scanLimit = 10
	keepLimit = 5

	snippetLimit = 800
)

const ragPromptTemplate = `Dựa trên ngữ cảnh sau, hãy trả lời câu hỏi một cách ngắn gọn, chính xác.

Câu hỏi: %s

Ngữ cảnh:
%s

Hướng dẫn:
- Nếu có thông tin phù hợp trong ngữ cảnh, hãy trả lời trực tiếp
- Nếu không đủ thông tin, hãy nói: "Không đủ thông tin để trả lời câu hỏi này."
- Trả lời bằng tiếng Việt, ngắn gọn và hữu ích
- Nếu có thể, hãy cung cấp thông tin liên quan có sẵn`

// SearchText answers a free-text product question with the hybrid strategy:
// field-intent detection, candidate name extraction, the tabular match
// cascade, then vector retrieval plus LLM synthesis when the catalog has no
// direct answer. Every failure comes back as a diagnostic string.
func (t *Toolkit) SearchText(ctx context.Context, query string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = InternalError(fmt.Errorf("%v", r))
		}
	}()

	field, keyword, hasField := DetectField(query)
	name := ExtractProductName(query, keyword)

	if rows := ResolveProductName(t.catalog, name); len(rows) > 0 {
		product, _ := t.catalog.At(rows[0])
		if t.logger != nil {
			t.logger.Printf("[SEARCH] Resolved %q to product %q (field=%q)", name, product.Name, field)
		}

		if hasField {
			if value := product.Field(field); strings.TrimSpace(value) != "" {
				return t.fieldAnswer(product.Name, field, value)
			}
		}
		return t.productSummary(rows[0])
	}

	return t.vectorFallback(ctx, query)
}

// fieldAnswer emits only the requested attribute, cleaned and capped at the
// field's length ceiling. Descriptions get a longer ceiling and their own
// paragraph layout.
func (t *Toolkit) fieldAnswer(productName, field, rawValue string) Result {
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	value := cleanValue(rawValue)

	if field == "description" {
		value = truncate(value, 800)
		return Answerf("%s của sản phẩm '%s':\n\n%s", label, productName, value)
	}
	value = truncate(value, 500)
	return Answerf("%s của sản phẩm '%s': %s", label, productName, value)
}

// productSummary emits the multi-line overview of a product, one labeled
// line per populated field in the fixed display order.
func (t *Toolkit) productSummary(row int) Result {
	product, ok := t.catalog.At(row)
	if !ok {
		return NoMatch(msgNoMatchingProducts)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Thông tin sản phẩm: %s\n", displayName(product))

	for _, sf := range summaryFields {
		raw := product.Field(sf.field)
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if sf.field == "breadcrumbs" {
			fmt.Fprintf(&b, "%s: %s\n", sf.label, truncate(cleanBreadcrumbs(raw), 200))
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", sf.label, truncate(cleanValue(raw), 300))
	}

	return Answer(b.String())
}

// vectorFallback retrieves semantically similar documents, deduplicates them
// by source identity, and asks the LLM to answer from the kept snippets.
func (t *Toolkit) vectorFallback(ctx context.Context, query string) Result {
	if t.retriever == nil {
		return NoMatch("Không tìm thấy thông tin phù hợp trong cơ sở dữ liệu.")
	}

	docs, err := t.retriever.Retrieve(ctx, query, retrieveTopK)
	if err != nil {
		return InternalError(err)
	}
	if len(docs) == 0 {
		return NoMatch("Không tìm thấy thông tin phù hợp trong cơ sở dữ liệu.")
	}

	type snippet struct {
		source string
		text   string
	}
	seen := make(map[string]struct{})
	var kept []snippet

	for i, doc := range docs {
		if i >= scanLimit {
			break
		}
		source := documentSource(doc.Metadata)
		if _, dup := seen[source]; dup {
			continue
		}
		seen[source] = struct{}{}
		kept = append(kept, snippet{source: source, text: clip(cleanSnippet(doc.Content), snippetLimit)})
		if len(kept) >= keepLimit {
			break
		}
	}
	if len(kept) == 0 {
		return NoMatch("Không tìm thấy thông tin phù hợp.")
	}

	blocks := make([]string, len(kept))
	for i, s := range kept {
		blocks[i] = fmt.Sprintf("[Tài liệu %d]\n%s", i+1, s.text)
	}
	prompt := fmt.Sprintf(ragPromptTemplate, query, strings.Join(blocks, "\n\n"))

	answer, err := t.llmProvider.Generate(ctx, prompt)
	if err != nil {
		return InternalError(err)
	}

	sources := make([]string, len(kept))
	for i, s := range kept {
		sources[i] = fmt.Sprintf("📄 Nguồn %d: %s", i+1, s.source)
	}

	return Answerf("%s\n\n%s", answer, strings.Join(sources, "\n"))
}

// documentSource picks the identity key used for deduplication and source
// attribution: identifier, then URL, then name, then "unknown".
func documentSource(metadata map[string]interface{}) string {
	for _, key := range []string{"id", "url", "name"} {
		if v, ok := metadata[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return "unknown"
}
