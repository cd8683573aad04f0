package testkit

import "testing"

var seamFn = func() string { return "real" }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &seamFn, func() string { return "fake" })
		if seamFn() != "fake" {
			t.Fatalf("swap did not take effect")
		}
	})
	if seamFn() != "real" {
		t.Fatalf("swap not restored")
	}
}
