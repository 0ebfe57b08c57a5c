package tools

import (
	"regexp"
	"strings"
)

var (
	markupChars    = strings.NewReplacer(`\`, "", "{", "", "}", "", `"`, "", "[", "", "]", "")
	htmlTags       = regexp.MustCompile(`<[^>]+>`)
	breadcrumbJoin = regexp.MustCompile(`\s*,\s*name:\s*`)
	breadcrumbHead = regexp.MustCompile(`name:\s*`)
)

// cleanValue strips the markup characters raw catalog cells carry over from
// their scraped JSON-ish form and collapses runs of whitespace.
func cleanValue(value string) string {
	v := markupChars.Replace(value)
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(v, " "))
}

// cleanBreadcrumbs additionally rewrites the nested "name:" markers into a
// " > " separated category path.
func cleanBreadcrumbs(value string) string {
	v := markupChars.Replace(value)
	v = breadcrumbJoin.ReplaceAllString(v, " > ")
	v = breadcrumbHead.ReplaceAllString(v, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(v, " "))
}

// cleanSnippet prepares a retrieved document for the LLM context block:
// markup tags become spaces and whitespace is collapsed.
func cleanSnippet(content string) string {
	v := htmlTags.ReplaceAllString(content, " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(v, " "))
}

// truncate caps a cleaned value at limit runes, marking the cut.
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit]) + "..."
}

// clip caps a snippet at limit runes without an ellipsis marker.
func clip(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
