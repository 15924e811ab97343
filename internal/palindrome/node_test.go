package palindrome

import "testing"

func TestNewNodeValid(t *testing.T) {
	n := NewNode("abc", 3)
	if n.Tail != "abc" || n.Offset != 3 {
		t.Fatalf("got %+v", n)
	}
	n = NewNode("xy", -2)
	if n.Tail != "xy" || n.Offset != -2 {
		t.Fatalf("got %+v", n)
	}
	n = NewNode("", 0)
	if n != Terminal {
		t.Fatalf("got %+v, want Terminal", n)
	}
}

func TestNewNodeInvariantViolationPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for a mismatched tail/offset")
		}
		if _, ok := r.(*InternalError); !ok {
			t.Fatalf("expected *InternalError, got %T (%v)", r, r)
		}
	}()
	NewNode("abc", 2)
}

func TestNodeString(t *testing.T) {
	if got := NewNode("ab", 2).String(); got != "ab-" {
		t.Errorf("got %q, want %q", got, "ab-")
	}
	if got := NewNode("ab", -2).String(); got != "-ab" {
		t.Errorf("got %q, want %q", got, "-ab")
	}
}
