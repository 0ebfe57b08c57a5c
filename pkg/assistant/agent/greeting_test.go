package agent

import "testing"

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"xin chào", true},
		{"Xin Chào", true},
		{"  chào  ", true},
		{"hello", true},
		{"hi", true},
		{"chao ban", true},
		{"alo shop", true},
		{"hello, can you help", false},
		{"chào giá đắt nhất", true},
		{"sản phẩm nào đắt nhất", false},
		{"hình như thế", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isGreeting(tt.message); got != tt.want {
			t.Errorf("isGreeting(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
