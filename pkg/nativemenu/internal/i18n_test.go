package internal

import "testing"

func TestTranslator(t *testing.T) {
	tests := []struct {
		lang    string
		noItems string
	}{
		{"", "There are no items in this list."},
		{"en-US", "There are no items in this list."},
		{"de", "Diese Liste enthält keine Einträge."},
		{"not a tag!", "There are no items in this list."},
	}

	for _, tt := range tests {
		tr := NewTranslator(tt.lang)
		if got := tr.NoItems(); got != tt.noItems {
			t.Errorf("NoItems(%q) = %q, want %q", tt.lang, got, tt.noItems)
		}
		if got := tr.Counter(3, 10); got != "3 / 10" {
			t.Errorf("Counter(%q) = %q", tt.lang, got)
		}
		if got := tr.EmptyOption(); got != "-" {
			t.Errorf("EmptyOption(%q) = %q", tt.lang, got)
		}
	}
}
