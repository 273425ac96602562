package holdrank

import (
	"errors"
	"testing"
)

func TestNewHoleCards(t *testing.T) {
	a, b := mustNew(Ace, Spade), mustNew(King, Heart)
	h, err := NewHoleCards(b, a)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if h.Hi() != a || h.Lo() != b {
		t.Errorf("expected hi-first reordering, got hi=%s lo=%s", h.Hi(), h.Lo())
	}
	if _, err := NewHoleCards(a, a); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("expected ErrDuplicateCard, got: %v", err)
	}
}

func TestHoleCardsNotation(t *testing.T) {
	tests := []struct {
		hi, lo Card
		exp    string
	}{
		{mustNew(Ace, Spade), mustNew(Ace, Heart), "AA"},
		{mustNew(Ace, Spade), mustNew(King, Spade), "AKs"},
		{mustNew(Ace, Spade), mustNew(King, Heart), "AKo"},
	}
	for i, test := range tests {
		h, err := NewHoleCards(test.hi, test.lo)
		if err != nil {
			t.Fatalf("test %d expected no error, got: %v", i, err)
		}
		if s := h.Notation(); s != test.exp {
			t.Errorf("test %d expected %q, got: %q", i, test.exp, s)
		}
	}
}

func TestHoleCardsFromNotation(t *testing.T) {
	tests := []struct {
		s        string
		isPair   bool
		isSuited bool
		err      error
	}{
		{"AA", true, false, nil},
		{"AKs", false, true, nil},
		{"AKo", false, false, nil},
		{"KA", false, false, ErrInvalidCardString},
		{"AAs", false, false, ErrInvalidCardString},
		{"AKz", false, false, ErrInvalidCardString},
	}
	for i, test := range tests {
		h, err := HoleCardsFromNotation(test.s)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Fatalf("test %d %q expected error %v, got: %v", i, test.s, test.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("test %d %q expected no error, got: %v", i, test.s, err)
		}
		if h.IsPair() != test.isPair {
			t.Errorf("test %d %q expected IsPair() == %v", i, test.s, test.isPair)
		}
		if h.IsSuited() != test.isSuited {
			t.Errorf("test %d %q expected IsSuited() == %v", i, test.s, test.isSuited)
		}
	}
}

func TestHoleCardsConnectivity(t *testing.T) {
	h, _ := NewHoleCards(mustNew(Ace, Spade), mustNew(King, Heart))
	if c := h.Connectivity(); c != 0 {
		t.Errorf("expected connectivity 0 for AK, got: %d", c)
	}
	h2, _ := NewHoleCards(mustNew(Ace, Spade), mustNew(Two, Heart))
	if c := h2.Connectivity(); c != 11 {
		t.Errorf("expected connectivity 11 for A2, got: %d", c)
	}
}
