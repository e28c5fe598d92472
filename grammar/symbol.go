package grammar

import "fmt"

// Symbol is a single id in a partitioned namespace: values in [0, N)
// name non-terminals, values in [N, N+T) name terminals, where N and T
// come from the View that produced the symbol.
// A Symbol on its own does not know which half of the namespace it is
// in — it must always be interpreted against the View it was obtained
// from, which is why every operation that needs to classify a symbol
// takes a View (see IsTerminal/IsNonTerminal below).
type Symbol uint32

// String gives a short, debug-friendly rendering of the raw id. Callers
// that have a View should prefer View.SymbolName.
func (s Symbol) String() string {
	return fmt.Sprintf("#%d", uint32(s))
}

// IsNonTerminal reports whether s falls in [0, g.NonTerminalNum()).
func (s Symbol) IsNonTerminal(g View) bool {
	return uint32(s) < uint32(g.NonTerminalNum())
}

// IsTerminal reports whether s falls in [N, N+T).
func (s Symbol) IsTerminal(g View) bool {
	n := uint32(g.NonTerminalNum())
	t := uint32(g.TerminalNum())
	u := uint32(s)
	return u >= n && u < n+t
}

// termIndex converts a terminal Symbol to a zero-based index into a
// bitset of width g.TerminalNum()(+1) — i.e. it strips the
// non-terminal-count offset. Panics (via the caller's bounds check) if
// s is not a terminal of g.
func termIndex(g View, s Symbol) int {
	return int(uint32(s) - uint32(g.NonTerminalNum()))
}

// symbolFromTermIndex is the inverse of termIndex.
func symbolFromTermIndex(g View, i int) Symbol {
	return Symbol(uint32(i) + uint32(g.NonTerminalNum()))
}
