package model

import "testing"

func TestParseIcon(t *testing.T) {
	tests := []struct {
		tag  string
		want Icon
	}{
		{"book", IconBook},
		{"shopping-bag", IconShoppingBag},
		{"folder", IconFolder},
		{"", IconFolder},
		{"no-such-icon", IconFolder},
		{"BOOK", IconFolder}, // tags are case-sensitive
	}
	for _, tt := range tests {
		if got := ParseIcon(tt.tag); got != tt.want {
			t.Errorf("ParseIcon(%q): expected %q, got %q", tt.tag, tt.want, got)
		}
	}
}

func TestKnownIcon(t *testing.T) {
	if !KnownIcon("couch") {
		t.Error("couch should be a known icon")
	}
	if KnownIcon("sofa") {
		t.Error("sofa is not a known icon")
	}
}

func TestCategoryBook(t *testing.T) {
	if !(Category{Icon: IconBook}).Book() {
		t.Error("book icon should activate book semantics")
	}
	if (Category{Icon: IconCouch}).Book() {
		t.Error("couch icon should not activate book semantics")
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusPurchased) || !ValidStatus(StatusNotPurchased) {
		t.Error("known statuses should validate")
	}
	if ValidStatus("bought") {
		t.Error("unknown status should not validate")
	}
}
