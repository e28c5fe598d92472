package grammar

import "github.com/nihei9/clr1/bitset"

// First is a FIRST-set table: for every non-terminal, a bitset over
// [0, T) (the terminal's zero-based index, not its raw Symbol id — see
// termIndex) plus one extra bit for EPS. It is built once from a View
// and never mutated afterward.
type First struct {
	g      View
	width  int // T+1: bits [0, T) are terminals, bit T (epsBit) is EPS
	epsBit int
	sets   []*bitset.Set // indexed by non-terminal Symbol
}

// BuildFirst computes FIRST(A) for every non-terminal A of g as a least
// fixed point. It is invoked implicitly by lr1.BuildLR1, but is exported
// because it is independently useful (e.g. to report FIRST sets for
// diagnostics) and independently testable.
func BuildFirst(g View) (*First, error) {
	t := g.TerminalNum()
	f := &First{
		g:      g,
		width:  t + 1, // the extra bit is EPS, not the LALR(1) propagation slot
		epsBit: t,
		sets:   make([]*bitset.Set, g.NonTerminalNum()),
	}
	for nt := 0; nt < g.NonTerminalNum(); nt++ {
		f.sets[nt] = bitset.New(f.width)
	}

	// Fixed-point loop: keep sweeping every production until a full
	// sweep makes no new bit 0→1. Self-reference within a single
	// production (A's RHS begins with A) does not need special handling
	// beyond the union itself: re-unioning FIRST(A) into itself is a
	// no-op once steady, and OrWith correctly reports "no change" for it.
	for {
		changed := false
		for ntID := 0; ntID < g.NonTerminalNum(); ntID++ {
			nt := Symbol(ntID)
			acc := f.sets[ntID]
			for _, p := range g.ProductionsOf(nt) {
				if f.unionProductionFirst(acc, p) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return f, nil
}

// unionProductionFirst unions production p's contribution to acc
// (FIRST of p's LHS) and reports whether acc grew. It unions FIRST(Xi)
// of each RHS symbol with EPS stripped, and only the "all symbols
// nullable" fallthrough adds EPS to acc, so acc holds EPS exactly when
// the LHS derives the empty string.
func (f *First) unionProductionFirst(acc *bitset.Set, p *Production) bool {
	if p.IsEmpty() {
		changed := !acc.Test(f.epsBit)
		acc.Set(f.epsBit)
		return changed
	}

	changed := false
	allNullable := true
	for _, sym := range p.RHS {
		if sym.IsNonTerminal(f.g) {
			rhs := f.sets[int(sym)]
			nonEps := rhs
			if rhs.Test(f.epsBit) {
				nonEps = rhs.Clone()
				nonEps.Clear(f.epsBit)
			}
			if acc.OrWith(nonEps) {
				changed = true
			}
			if !rhs.Test(f.epsBit) {
				allNullable = false
				break
			}
		} else {
			idx := termIndex(f.g, sym)
			if !acc.Test(idx) {
				acc.Set(idx)
				changed = true
			}
			allNullable = false
			break
		}
	}
	if allNullable {
		if !acc.Test(f.epsBit) {
			acc.Set(f.epsBit)
			changed = true
		}
	}
	return changed
}

// Of returns the FIRST set of a single non-terminal, as a bitset indexed
// by zero-based terminal offset (see termIndex) with one extra bit
// (Of(nt).Test(f.EpsBit())) for EPS membership.
func (f *First) Of(nt Symbol) *bitset.Set {
	return f.sets[int(nt)]
}

// EpsBit returns the bit index used for EPS membership in the sets this
// table and OfString return.
func (f *First) EpsBit() int {
	return f.epsBit
}

// OfString computes FIRST(β a) for a symbol string β followed by a
// terminal lookahead set a. The returned set never contains EPS,
// because a lookahead set never does.
func (f *First) OfString(beta []Symbol, a *bitset.Set) *bitset.Set {
	ret := bitset.New(f.width)
	for _, sym := range beta {
		if sym.IsNonTerminal(f.g) {
			rhs := f.sets[int(sym)]
			ret.OrWith(rhs)
			ret.Clear(f.epsBit)
			if !rhs.Test(f.epsBit) {
				return ret
			}
		} else {
			ret.Set(termIndex(f.g, sym))
			return ret
		}
	}
	ret.OrWith(a)
	return ret
}
