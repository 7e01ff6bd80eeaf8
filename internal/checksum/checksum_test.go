package checksum

import "testing"

func TestSum_EmptyInput(t *testing.T) {
	// SHA-256 of the empty string.
	want := "e3b0c44298fc1c149afb04c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != want {
		t.Errorf("Sum(nil) = %q, want %q", got, want)
	}
}

func TestSum_Distinguishes(t *testing.T) {
	if Sum([]byte("a")) == Sum([]byte("b")) {
		t.Error("different inputs should digest differently")
	}
}

func TestCombine_OrderSensitive(t *testing.T) {
	a, b := Sum([]byte("a")), Sum([]byte("b"))
	if Combine([]string{a, b}) == Combine([]string{b, a}) {
		t.Error("combined digest should depend on order")
	}
	if Combine([]string{a, b}) != Combine([]string{a, b}) {
		t.Error("combined digest should be deterministic")
	}
}

func TestCombine_Empty(t *testing.T) {
	if Combine(nil) != Combine([]string{}) {
		t.Error("nil and empty lists should digest identically")
	}
}
