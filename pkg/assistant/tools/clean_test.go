package tools

import "testing"

func TestCleanValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips markup characters", `{"value": [cotton]}`, "value: cotton"},
		{"collapses whitespace", "soft   and \n light", "soft and light"},
		{"plain value untouched", "100% cotton", "100% cotton"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanValue(tt.in); got != tt.want {
				t.Errorf("cleanValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanBreadcrumbs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites name markers to a category path",
			in:   `[{name: Home, name: Kitchen, name: Cookware}]`,
			want: "Home > Kitchen > Cookware",
		},
		{
			name: "single segment",
			in:   "name: Electronics",
			want: "Electronics",
		},
		{
			name: "no markers",
			in:   "Electronics",
			want: "Electronics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanBreadcrumbs(tt.in); got != tt.want {
				t.Errorf("cleanBreadcrumbs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanSnippet(t *testing.T) {
	got := cleanSnippet("<p>Soft</p><br/>and   light")
	want := "Soft and light"
	if got != want {
		t.Errorf("cleanSnippet = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"under the limit", "abc", 5, "abc"},
		{"at the limit", "abcde", 5, "abcde"},
		{"over the limit", "abcdef", 4, "abcd..."},
		{"counts runes not bytes", "màu đỏ", 5, "màu đ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.limit); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	if got := clip("abcdef", 4); got != "abcd" {
		t.Errorf("clip over the limit = %q, want %q", got, "abcd")
	}
	if got := clip("abc", 4); got != "abc" {
		t.Errorf("clip under the limit = %q, want %q", got, "abc")
	}
}
