package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"shop-assistant-be/pkg/assistant/tools"
	"shop-assistant-be/pkg/llm"
)

// Tool names the dispatcher can route to.
const (
	ToolHighestPrice = "get_highest_price"
	ToolLowestPrice  = "get_lowest_price"
	ToolSuggestPrice = "suggest_by_price"
	ToolPriceRange   = "recommend_product_by_range"
	ToolFromBrand    = "product_from_brand"
	ToolSameBrand    = "product_same_brand"
	ToolSearchText   = "search_text"
)

const fallbackReply = "Xin lỗi, tôi không thể xử lý câu hỏi này."

// ToolCall is the structured tool selection the model is asked to produce.
type ToolCall struct {
	Tool        string   `json:"tool"`
	Field       string   `json:"field"`
	N           int      `json:"n"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
	RefPrice    *float64 `json:"ref_price"`
	BrandName   string   `json:"brand_name"`
	ProductName string   `json:"product_name"`
	Query       string   `json:"query"`
}

// Dispatcher routes one user utterance to exactly one tool call per turn and
// surfaces the tool's result text verbatim. Tool selection is a single
// deterministic LLM call; a keyword router stands in when the model fails or
// answers with something unparseable.
type Dispatcher struct {
	llmProvider llm.LLMProvider
	toolkit     *tools.Toolkit
	logger      *log.Logger
}

func NewDispatcher(llmProvider llm.LLMProvider, toolkit *tools.Toolkit, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		llmProvider: llmProvider,
		toolkit:     toolkit,
		logger:      logger,
	}
}

// Handle answers one user message within the given conversation.
func (d *Dispatcher) Handle(ctx context.Context, sessionID, message string) string {
	if isGreeting(message) {
		return greetingReply
	}

	call := d.resolveToolCall(ctx, message)
	result := d.execute(ctx, sessionID, message, call)

	if strings.TrimSpace(result.Text) == "" {
		return fallbackReply
	}
	return result.Text
}

func (d *Dispatcher) resolveToolCall(ctx context.Context, message string) *ToolCall {
	prompt := buildSelectionPrompt(message)

	response, err := d.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		d.logger.Printf("[WARN] Tool selection failed, using keyword router: %v", err)
		return fallbackToolCall(message)
	}

	call, err := parseToolCall(response)
	if err != nil {
		d.logger.Printf("[WARN] Tool selection unparseable, using keyword router: %v", err)
		return fallbackToolCall(message)
	}

	d.logger.Printf("[AGENT] Selected tool: %s (field=%s n=%d)", call.Tool, call.Field, call.N)
	return call
}

func (d *Dispatcher) execute(ctx context.Context, sessionID, message string, call *ToolCall) tools.Result {
	query := call.Query
	if query == "" {
		query = message
	}

	switch call.Tool {
	case ToolHighestPrice:
		return d.toolkit.HighestPrice(sessionID, call.Field)
	case ToolLowestPrice:
		return d.toolkit.LowestPrice(sessionID, call.Field)
	case ToolSuggestPrice:
		return d.toolkit.SuggestByPrice(sessionID, query, call.Field, call.N, call.RefPrice)
	case ToolPriceRange:
		return d.toolkit.RecommendByRange(call.Field, call.N, call.MinPrice, call.MaxPrice)
	case ToolFromBrand:
		return d.toolkit.ProductsFromBrand(call.BrandName, call.N)
	case ToolSameBrand:
		return d.toolkit.ProductsSameBrand(call.ProductName, call.N)
	default:
		return d.toolkit.SearchText(ctx, query)
	}
}

func buildSelectionPrompt(message string) string {
	var p strings.Builder

	p.WriteString("You are a helpful Vietnamese e-commerce assistant. ")
	p.WriteString("Select EXACTLY ONE tool for the user question below.\n\n")

	p.WriteString("TOOL SELECTION RULES:\n\n")
	p.WriteString("1. PRICE RANGE queries (từ X đến Y, between X and Y):\n")
	p.WriteString("   -> recommend_product_by_range with min_price=X, max_price=Y, n=3\n\n")
	p.WriteString("2. HIGHEST/MOST EXPENSIVE (đắt nhất, cao nhất):\n")
	p.WriteString("   -> get_highest_price\n\n")
	p.WriteString("3. LOWEST/CHEAPEST (rẻ nhất, thấp nhất):\n")
	p.WriteString("   -> get_lowest_price\n\n")
	p.WriteString("4. BRAND queries (sản phẩm VEVOR, products from X):\n")
	p.WriteString("   -> product_from_brand with brand_name=\"X\", n=3\n\n")
	p.WriteString("5. SAME BRAND AS A PRODUCT (cùng thương hiệu, same brand):\n")
	p.WriteString("   -> product_same_brand with product_name=\"X\", n=3\n\n")
	p.WriteString("6. NEAR A PRICE (gần giá X, around price X):\n")
	p.WriteString("   -> suggest_by_price with ref_price=X, n=3\n\n")
	p.WriteString("7. Anything about a specific product's attributes (giá, mô tả, rating, size, ...):\n")
	p.WriteString("   -> search_text\n\n")

	p.WriteString("IMPORTANT:\n")
	p.WriteString("- Always use field=\"salePrice\"\n")
	p.WriteString("- Pass the full original question as 'query' (do not extract or modify it)\n")
	p.WriteString("- Call exactly one tool\n\n")

	p.WriteString("User question: ")
	p.WriteString(message)
	p.WriteString("\n\nRespond with ONLY valid JSON:\n")
	p.WriteString("{\n")
	p.WriteString("  \"tool\": \"get_highest_price|get_lowest_price|suggest_by_price|recommend_product_by_range|product_from_brand|product_same_brand|search_text\",\n")
	p.WriteString("  \"field\": \"salePrice\",\n")
	p.WriteString("  \"n\": 3,\n")
	p.WriteString("  \"min_price\": 0,\n")
	p.WriteString("  \"max_price\": null,\n")
	p.WriteString("  \"ref_price\": null,\n")
	p.WriteString("  \"brand_name\": \"\",\n")
	p.WriteString("  \"product_name\": \"\",\n")
	p.WriteString("  \"query\": \"the full original question\"\n")
	p.WriteString("}")

	return p.String()
}

func parseToolCall(response string) (*ToolCall, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var call ToolCall
	if err := json.Unmarshal([]byte(jsonContent), &call); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	call.Tool = strings.ToLower(strings.TrimSpace(call.Tool))
	if !knownTool(call.Tool) {
		return nil, fmt.Errorf("unknown tool %q", call.Tool)
	}
	return &call, nil
}

func knownTool(name string) bool {
	switch name {
	case ToolHighestPrice, ToolLowestPrice, ToolSuggestPrice, ToolPriceRange,
		ToolFromBrand, ToolSameBrand, ToolSearchText:
		return true
	}
	return false
}

// extractJSON pulls the outermost JSON object out of a model response that
// may wrap it in prose or code fences.
func extractJSON(response string) string {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end < 0 || end <= start {
		return ""
	}
	return response[start : end+1]
}
