package lr1

import (
	"testing"

	"github.com/nihei9/clr1/grammar"
)

// buildArithGrammar builds the small arithmetic grammar used throughout
// this package's tests:
//
//	E -> E + T | T
//	T -> id
//
// Build adds the augmented start production E' -> E.
func buildArithGrammar(t *testing.T) (*grammar.Grammar, map[string]grammar.Symbol) {
	t.Helper()
	b := grammar.NewGrammarBuilder()
	syms := map[string]grammar.Symbol{}
	syms["E"] = b.DeclareNonTerminal("E")
	syms["T"] = b.DeclareNonTerminal("T")
	syms["+"] = b.DeclareTerminal("+")
	syms["id"] = b.DeclareTerminal("id")

	b.AddProduction(syms["E"], syms["E"], syms["+"], syms["T"])
	b.AddProduction(syms["E"], syms["T"])
	b.AddProduction(syms["T"], syms["id"])
	b.SetStart(syms["E"])

	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g, syms
}

func TestItemLess(t *testing.T) {
	tests := []struct {
		caption string
		a, b    Item
		want    bool
	}{
		{caption: "lower production id", a: Item{Prod: 0, Dot: 5}, b: Item{Prod: 1, Dot: 0}, want: true},
		{caption: "same production, lower dot", a: Item{Prod: 2, Dot: 0}, b: Item{Prod: 2, Dot: 1}, want: true},
		{caption: "equal items", a: Item{Prod: 2, Dot: 1}, b: Item{Prod: 2, Dot: 1}, want: false},
		{caption: "higher production id", a: Item{Prod: 3, Dot: 0}, b: Item{Prod: 2, Dot: 9}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("(%v).Less(%v) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestItemDottedSymbolAndComplete(t *testing.T) {
	g, syms := buildArithGrammar(t)
	var tProd *grammar.Production
	for _, p := range g.AllProductions() {
		if p.LHS == syms["T"] && len(p.RHS) == 1 && p.RHS[0] == syms["id"] {
			tProd = p
		}
	}
	if tProd == nil {
		t.Fatalf("expected to find T -> id among the built productions")
	}

	start := Item{Prod: tProd.ID, Dot: 0}
	sym, ok := start.DottedSymbol(tProd)
	if !ok || sym != syms["id"] {
		t.Fatalf("DottedSymbol() = (%v, %v); want (id, true)", sym, ok)
	}
	if start.Complete(tProd) {
		t.Errorf("item with the dot before the only symbol should not be complete")
	}

	end := start.Advance()
	if !end.Complete(tProd) {
		t.Errorf("item with the dot after the only symbol should be complete")
	}
	if _, ok := end.DottedSymbol(tProd); ok {
		t.Errorf("DottedSymbol() of a complete item should report ok=false")
	}
}

func TestItemBeta(t *testing.T) {
	g, syms := buildArithGrammar(t)
	var eProd *grammar.Production
	for _, p := range g.AllProductions() {
		if p.LHS == syms["E"] && len(p.RHS) == 3 {
			eProd = p
		}
	}
	if eProd == nil {
		t.Fatalf("expected to find E -> E + T among the built productions")
	}

	it := Item{Prod: eProd.ID, Dot: 0} // dot before E, so β = "+ T"
	beta := it.Beta(eProd)
	if len(beta) != 2 || beta[0] != syms["+"] || beta[1] != syms["T"] {
		t.Errorf("Beta() = %v; want [+ T]", beta)
	}

	last := Item{Prod: eProd.ID, Dot: 2} // dot before T, so β is empty
	if got := last.Beta(eProd); len(got) != 0 {
		t.Errorf("Beta() at the last symbol should be empty, got %v", got)
	}
}
