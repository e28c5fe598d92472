// Package lr1 implements the canonical LR(1) construction: FIRST (via
// grammar.BuildFirst), closure and GOTO over sets of LR(1) items, and a
// worklist-driven automaton builder. It consumes a grammar.View and
// produces the ordered list of states and transitions that a
// shift/reduce table builder would take as input — building that
// table, resolving conflicts, and merging states into LALR(1) are all
// out of scope here.
package lr1

import "github.com/nihei9/clr1/grammar"

// Item is an LR(0) item: a reference to a production and a dot
// position in [0, len(rhs)]. It does not copy the production's
// right-hand side — callers fetch that from the grammar.View that
// produced the production, which must outlive every Item.
type Item struct {
	Prod grammar.ProductionID
	Dot  int
}

// Less gives the total order over items used to canonicalize states:
// lexicographic over (production id, dot).
func (it Item) Less(other Item) bool {
	if it.Prod != other.Prod {
		return it.Prod < other.Prod
	}
	return it.Dot < other.Dot
}

// Production resolves the item's production against g.
func (it Item) Production(g grammar.View) *grammar.Production {
	return g.ProductionByID(it.Prod)
}

// Complete reports whether the dot has reached the end of the
// production's right-hand side, i.e. the item contributes no
// successors.
func (it Item) Complete(p *grammar.Production) bool {
	return it.Dot >= len(p.RHS)
}

// DottedSymbol returns the symbol immediately after the dot, and false
// if the item is complete.
func (it Item) DottedSymbol(p *grammar.Production) (grammar.Symbol, bool) {
	if it.Complete(p) {
		return 0, false
	}
	return p.RHS[it.Dot], true
}

// Advance returns the item with the dot moved one place to the right.
// The caller is responsible for only doing this when the item is not
// complete.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1}
}

// Beta returns the symbols strictly after the dotted symbol — the "β"
// of the closure rule over items of the form [A -> α·Bβ, b].
func (it Item) Beta(p *grammar.Production) []grammar.Symbol {
	if it.Dot+1 >= len(p.RHS) {
		return nil
	}
	return p.RHS[it.Dot+1:]
}
