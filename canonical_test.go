package holdrank

import "testing"

func TestCanonicalizeSuitIsomorphism(t *testing.T) {
	a := MustParseCards("As Ks Qh Jh")
	b := MustParseCards("Ah Kh Qd Jd")
	canonA, _, err := Canonicalize(a)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	canonB, _, err := Canonicalize(b)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(canonA) != len(canonB) {
		t.Fatalf("expected equal-length canonical forms, got %d vs %d", len(canonA), len(canonB))
	}
	for i := range canonA {
		if canonA[i] != canonB[i] {
			t.Fatalf("expected identical canonical forms, got %v vs %v", CardFormatter(canonA), CardFormatter(canonB))
		}
	}
}

func TestCanonicalizeUsesFirstSuitAsSpade(t *testing.T) {
	cards := MustParseCards("Ac Kc")
	canon, mapping, err := Canonicalize(cards)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	for _, c := range canon {
		if c.Suit() != Spade {
			t.Errorf("expected single-suit hand to canonicalize to Spade, got: %s", c)
		}
	}
	if mapping[Club] != Spade {
		t.Errorf("expected Club -> Spade mapping, got: %s", mapping[Club])
	}
}

func TestCanonicalizeEmpty(t *testing.T) {
	canon, mapping, err := Canonicalize(nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(canon) != 0 || len(mapping) != 0 {
		t.Fatalf("expected empty canonical form, got %v %v", canon, mapping)
	}
}

func TestCanonicalizeDeterministicOrdering(t *testing.T) {
	cards := MustParseCards("Kh Ad")
	canon, _, err := Canonicalize(cards)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	for i := 1; i < len(canon); i++ {
		if !cardLess(canon[i-1], canon[i]) {
			t.Errorf("expected canonical form sorted ascending by (rank,suit), got: %v", CardFormatter(canon))
		}
	}
}
