package services

import "testing"

func TestParseSortKey(t *testing.T) {
	for _, k := range SortKeyOptions {
		got, err := ParseSortKey(string(k))
		if err != nil || got != k {
			t.Errorf("ParseSortKey(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseSortKey("nope"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestParseGroupField(t *testing.T) {
	for _, f := range GroupFieldOptions {
		got, err := ParseGroupField(string(f))
		if err != nil || got != f {
			t.Errorf("ParseGroupField(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseGroupField("week"); err == nil {
		t.Error("expected error for unknown group field")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range CategoryOptions {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}
	if _, err := ParseCategory("TRANSFER"); err == nil {
		t.Error("expected error for unknown category")
	}
}
