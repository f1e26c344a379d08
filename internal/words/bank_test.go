package words

import (
	"math/rand"
	"testing"
)

func TestNewBankNormalizes(t *testing.T) {
	bank, err := NewBank([]string{" go ", "Rust", "rust", "GO", "", "  "})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	got := bank.Entries()
	want := []string{"GO", "RUST"}
	if len(got) != len(want) {
		t.Fatalf("Entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d = %q, want %q", i, got[i], want[i])
		}
	}
	if bank.Len() != 2 {
		t.Errorf("Len = %d, want 2", bank.Len())
	}
}

func TestNewBankRejectsEmpty(t *testing.T) {
	if _, err := NewBank(nil); err == nil {
		t.Error("Expected an error for a nil list")
	}
	if _, err := NewBank([]string{"", "   "}); err == nil {
		t.Error("Expected an error for a list of blanks")
	}
}

func TestPickDeterministic(t *testing.T) {
	bank, err := NewBank([]string{"ADA", "LISP", "FORTH", "SCHEME"})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		a, b := bank.Pick(r1), bank.Pick(r2)
		if a != b {
			t.Fatalf("Pick %d diverged: %q vs %q", i, a, b)
		}
	}
}

func TestPickCoversAllEntries(t *testing.T) {
	bank, err := NewBank([]string{"ADA", "LISP", "FORTH"})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	seen := make(map[string]bool)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		seen[bank.Pick(rng)] = true
	}
	if len(seen) != bank.Len() {
		t.Errorf("200 picks reached %d of %d entries", len(seen), bank.Len())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	bank, err := NewBank([]string{"ADA", "LISP"})
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}

	bank.Entries()[0] = "MUTATED"
	if got := bank.Entries()[0]; got != "ADA" {
		t.Errorf("Entry 0 = %q after external mutation, want ADA", got)
	}
}
