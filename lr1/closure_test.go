package lr1

import (
	"testing"

	"github.com/nihei9/clr1/bitset"
	"github.com/nihei9/clr1/grammar"
)

func TestClosureOfAugmentedStart(t *testing.T) {
	g, syms := buildArithGrammar(t)
	first, err := grammar.BuildFirst(g)
	if err != nil {
		t.Fatalf("BuildFirst() error = %v", err)
	}

	width := g.TerminalNum() + 1
	la := bitset.New(width)
	la.Set(termIndex(g, g.EOF()))

	seed := itemSet{{Prod: g.Start().ID, Dot: 0}: la}
	closed := closure(g, first, seed)

	// Closing [S' -> ·E, EOF] must pull in every item [E -> ·..., {+, EOF}]
	// and [T -> ·id, {+, EOF}], since E and T both appear at the head of
	// some alternative reachable from E.
	wantProds := map[string]bool{}
	for _, p := range g.AllProductions() {
		if p.LHS == syms["E"] || p.LHS == syms["T"] {
			wantProds[key(p.ID, 0)] = true
		}
	}
	wantProds[key(g.Start().ID, 0)] = true

	if len(closed) != len(wantProds) {
		t.Fatalf("closure has %d items; want %d", len(closed), len(wantProds))
	}
	for it := range closed {
		if !wantProds[key(it.Prod, it.Dot)] {
			t.Errorf("unexpected item in closure: %v", it)
		}
	}

	// Every dot-zero item of E or T inherits a lookahead containing EOF
	// (transitively, from the seed) and '+' (from FIRST of the β that
	// follows E in E -> E + T).
	for it, set := range closed {
		if it.Dot != 0 {
			continue
		}
		if !set.Test(termIndex(g, g.EOF())) {
			t.Errorf("item %v should carry EOF in its lookahead", it)
		}
	}
}

func TestGoToAdvancesAndRecloses(t *testing.T) {
	g, syms := buildArithGrammar(t)
	first, err := grammar.BuildFirst(g)
	if err != nil {
		t.Fatalf("BuildFirst() error = %v", err)
	}

	width := g.TerminalNum() + 1
	la := bitset.New(width)
	la.Set(termIndex(g, g.EOF()))
	seed := itemSet{{Prod: g.Start().ID, Dot: 0}: la}
	state0 := closure(g, first, seed)

	onE := goTo(g, first, state0, syms["E"])
	if onE == nil {
		t.Fatalf("GOTO(state0, E) should not be empty")
	}
	// GOTO on E must contain [S' -> E·, EOF] and [E -> E·+ T, {+, EOF}].
	foundAccept := false
	foundShift := false
	for it := range onE {
		p := it.Production(g)
		if p.ID == g.Start().ID && it.Complete(p) {
			foundAccept = true
		} else if p.LHS != syms["E"] {
			continue
		} else if sym, ok := it.DottedSymbol(p); ok && sym == syms["+"] {
			foundShift = true
		}
	}
	if !foundAccept {
		t.Errorf("GOTO(state0, E) should contain a completed augmented-start item")
	}
	if !foundShift {
		t.Errorf("GOTO(state0, E) should contain E -> E·+T")
	}

	onID := goTo(g, first, state0, syms["id"])
	if onID == nil || len(onID) != 1 {
		t.Fatalf("GOTO(state0, id) should be the single completed item T -> id·")
	}
	for it := range onID {
		p := it.Production(g)
		if !it.Complete(p) || p.LHS != syms["T"] {
			t.Errorf("GOTO(state0, id) = %v; want a completed T production", it)
		}
	}

	if goTo(g, first, state0, syms["+"]) != nil {
		t.Errorf("GOTO(state0, +) should be empty; nothing in state0 is dotted on +")
	}
}

func key(p grammar.ProductionID, dot int) string {
	return appendItemKeyString(Item{Prod: p, Dot: dot})
}

func appendItemKeyString(it Item) string {
	return string(appendItemKey(nil, it))
}
