package lr1

import (
	"sort"

	"github.com/nihei9/clr1/bitset"
	"github.com/nihei9/clr1/grammar"
)

// itemSet is the working representation of an LR(1) item set during
// closure and GOTO: a map from item to its accumulated lookahead set, so
// that two items differing only in lookahead are one map entry whose
// bitset grows, rather than one entry per lookahead symbol.
type itemSet map[Item]*bitset.Set

// closure computes the closure of seed under g and first: repeatedly,
// for every item [A -> α·Bβ, b] where B is a non-terminal, add
// [B -> ·γ, FIRST(βb)] for every production B -> γ, until nothing
// changes. It mutates and returns a set built on top of seed; seed's
// bitsets are cloned first so the caller's copy is left alone.
func closure(g grammar.View, first *grammar.First, seed itemSet) itemSet {
	width := g.TerminalNum() + 1
	result := make(itemSet, len(seed))
	pending := make([]Item, 0, len(seed))
	for it, la := range seed {
		result[it] = la.Clone()
		pending = append(pending, it)
	}

	for len(pending) > 0 {
		it := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		la := result[it]
		p := it.Production(g)
		sym, ok := it.DottedSymbol(p)
		if !ok || !sym.IsNonTerminal(g) {
			continue
		}

		newLA := first.OfString(it.Beta(p), la)
		for _, prod := range g.ProductionsOf(sym) {
			newItem := Item{Prod: prod.ID, Dot: 0}
			cur, exists := result[newItem]
			if !exists {
				cur = bitset.New(width)
				result[newItem] = cur
			}
			if cur.OrWith(newLA) {
				pending = append(pending, newItem)
			}
		}
	}

	return result
}

// goTo computes GOTO(items, x): advance every item of items dotted on x
// by one position, merging lookaheads for items that land on the same
// advanced item, then closes the result. It returns nil if no item in
// items is dotted on x.
func goTo(g grammar.View, first *grammar.First, items itemSet, x grammar.Symbol) itemSet {
	width := g.TerminalNum() + 1
	moved := itemSet{}
	for it, la := range items {
		p := it.Production(g)
		sym, ok := it.DottedSymbol(p)
		if !ok || sym != x {
			continue
		}
		adv := it.Advance()
		cur, exists := moved[adv]
		if !exists {
			cur = bitset.New(width)
			moved[adv] = cur
		}
		cur.OrWith(la)
	}
	if len(moved) == 0 {
		return nil
	}
	return closure(g, first, moved)
}

// dottedSymbols returns, in ascending Symbol order, every distinct
// symbol some item of items is dotted on. It drives the set of
// candidate GOTO transitions out of a state.
func dottedSymbols(g grammar.View, items itemSet) []grammar.Symbol {
	seen := map[grammar.Symbol]bool{}
	var syms []grammar.Symbol
	for it := range items {
		p := it.Production(g)
		sym, ok := it.DottedSymbol(p)
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// canonicalKey renders items as a string that is equal for two item
// sets iff they contain exactly the same (item, lookahead) pairs. It
// decides whether a GOTO result is a new state or an existing one.
func canonicalKey(items itemSet) string {
	ordered := make([]Item, 0, len(items))
	for it := range items {
		ordered = append(ordered, it)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	var buf []byte
	for _, it := range ordered {
		buf = appendItemKey(buf, it)
		buf = append(buf, ':')
		buf = append(buf, items[it].Key()...)
		buf = append(buf, ';')
	}
	return string(buf)
}

func appendItemKey(buf []byte, it Item) []byte {
	buf = appendInt(buf, int(it.Prod))
	buf = append(buf, '.')
	buf = appendInt(buf, it.Dot)
	return buf
}

func appendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	neg := n < 0
	if neg {
		n = -n
		buf = append(buf, '-')
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
