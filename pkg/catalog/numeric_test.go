package catalog

import "testing"

func TestCoerce(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOk bool
	}{
		{name: "plain integer", raw: "120", want: 120, wantOk: true},
		{name: "decimal", raw: "99.99", want: 99.99, wantOk: true},
		{name: "padded", raw: "  15.5 ", want: 15.5, wantOk: true},
		{name: "empty", raw: "", wantOk: false},
		{name: "text", raw: "N/A", wantOk: false},
		{name: "currency symbol", raw: "$12", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Coerce(tt.raw)
			if ok != tt.wantOk {
				t.Errorf("Coerce(%q) ok = %v, want %v", tt.raw, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Coerce(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{120, "120"},
		{99.99, "99.99"},
		{15.5, "15.5"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
