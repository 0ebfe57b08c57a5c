package agent

import "strings"

var greetings = []string{"xin chào", "chào", "hello", "hi", "hey", "chao", "alo"}

const greetingReply = "Xin chào! Tôi có thể giúp gì cho bạn?"

// isGreeting reports whether the message is a bare greeting, matched exactly
// or as a greeting word followed by a space.
func isGreeting(message string) bool {
	q := strings.ToLower(strings.TrimSpace(message))
	for _, g := range greetings {
		if q == g || strings.HasPrefix(q, g+" ") {
			return true
		}
	}
	return false
}
