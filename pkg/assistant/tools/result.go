package tools

import "fmt"

// Kind classifies a tool outcome. The dispatcher flattens every kind to its
// text; the tag exists so callers and tests can tell an answer from an
// apology without string matching.
type Kind int

const (
	// KindAnswer is a successful, user-presentable result.
	KindAnswer Kind = iota
	// KindMissingData means a required value was absent (no numeric column,
	// no resolvable reference price, no max_price).
	KindMissingData
	// KindNoMatch means a filter or search yielded zero qualifying records.
	KindNoMatch
	// KindInternalError is an unexpected failure converted to a diagnostic.
	KindInternalError
)

// Result is a tool outcome. Text is always final, user-presentable Vietnamese
// regardless of Kind.
type Result struct {
	Kind Kind
	Text string
}

func (r Result) OK() bool {
	return r.Kind == KindAnswer
}

func Answer(text string) Result {
	return Result{Kind: KindAnswer, Text: text}
}

func Answerf(format string, args ...interface{}) Result {
	return Result{Kind: KindAnswer, Text: fmt.Sprintf(format, args...)}
}

func MissingData(text string) Result {
	return Result{Kind: KindMissingData, Text: text}
}

func MissingDataf(format string, args ...interface{}) Result {
	return Result{Kind: KindMissingData, Text: fmt.Sprintf(format, args...)}
}

func NoMatch(text string) Result {
	return Result{Kind: KindNoMatch, Text: text}
}

func NoMatchf(format string, args ...interface{}) Result {
	return Result{Kind: KindNoMatch, Text: fmt.Sprintf(format, args...)}
}

func InternalError(err error) Result {
	return Result{Kind: KindInternalError, Text: fmt.Sprintf("❌ Lỗi khi tìm kiếm: %v", err)}
}
