package holdrank

import "testing"

func TestEvaluateReferenceCategories(t *testing.T) {
	tests := []struct {
		name string
		s    string
		exp  HandRank
	}{
		{"royal flush", "As Ks Qs Js Ts", StraightFlush},
		{"wheel straight flush", "5s 4s 3s 2s As", StraightFlush},
		{"quads", "Ks Kh Kd Kc 2s", Quads},
		{"full house", "Ks Kh Kd 2s 2h", FullHouse},
		{"flush", "2s 5s 9s Js Ks", Flush},
		{"broadway straight", "As Kh Qd Jc Ts", Straight},
		{"wheel straight", "5s 4h 3d 2c As", Straight},
		{"trips", "Ks Kh Kd 2s 9h", Trips},
		{"two pair", "Ks Kh 2d 2s 9h", TwoPair},
		{"one pair", "Ks Kh 2d 5s 9h", OnePair},
		{"high card", "Ks 2h 5d 9s Jh", HighCard},
	}
	for i, test := range tests {
		cards := MustParseCards(test.s)
		v, err := EvaluateReference(cards)
		if err != nil {
			t.Fatalf("test %d %s: expected no error, got: %v", i, test.name, err)
		}
		if r := v.Rank(); r != test.exp {
			t.Errorf("test %d %s: expected %s, got: %s", i, test.name, test.exp, r)
		}
	}
}

func TestEvaluateReferenceInvalidSize(t *testing.T) {
	if _, err := EvaluateReference(MustParseCards("As Ks Qs")); err == nil {
		t.Fatal("expected an error for a 3-card hand")
	}
	if _, err := EvaluateReference(MustParseCards("As Ks Qs Js Ts 9s 8s 7s")); err == nil {
		t.Fatal("expected an error for an 8-card hand")
	}
}

func TestEvaluateReferenceBestOfSeven(t *testing.T) {
	// Board gives a flush; hole cards give an unrelated pair that
	// shouldn't beat the board-only flush once the best 5 of 7 is taken.
	cards := MustParseCards("2s 5s 9s Js Ks 2h 7d")
	v, err := EvaluateReference(cards)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if r := v.Rank(); r != Flush {
		t.Fatalf("expected Flush, got: %s", r)
	}
}

func TestHandRankOrderingAcrossCategories(t *testing.T) {
	straight, _ := EvaluateReference(MustParseCards("As Kh Qd Jc Ts"))
	flush, _ := EvaluateReference(MustParseCards("2s 5s 9s Js Ks"))
	if !straight.Less(flush) {
		t.Errorf("expected straight < flush")
	}
	pair, _ := EvaluateReference(MustParseCards("Ks Kh 2d 5s 9h"))
	higherPair, _ := EvaluateReference(MustParseCards("As Ah 2d 5s 9h"))
	if !pair.Less(higherPair) {
		t.Errorf("expected pair of kings < pair of aces")
	}
}
