// Package grammar defines the read-only grammar view the lr1 package
// builds a canonical LR(1) collection from, the data it is made of
// (symbols, productions), the FIRST table, and a GrammarBuilder
// collaborator that produces views in-memory.
//
// Grammar front-end parsing — reading a textual grammar file, validating
// it with regexes, resolving terminal priority tables — is out of
// scope here; GrammarBuilder is a programmatic construction surface,
// not a parser for a grammar language.
package grammar

// View is the read-only grammar contract the lr1 package consumes.
//
//   - TerminalNum is the number of *real* terminals; the lr1 package
//     adds 1 itself to reserve a propagation slot a sibling LALR(1)
//     construction could use, so View never needs to know about it.
//   - NonTerminalNum is the number of non-terminals.
//   - EPS/EOF are the distinguished terminal ids.
//   - ProductionsOf returns a non-terminal's alternatives.
//   - Start is the unique augmented start production.
type View interface {
	TerminalNum() int
	NonTerminalNum() int
	EPS() Symbol
	EOF() Symbol
	ProductionsOf(nt Symbol) []*Production
	Start() *Production

	// ProductionByID resolves the stable id every Production carries back
	// to its owning Production. The lr1 package uses this to go from an
	// Item's bare ProductionID back to the production's right-hand side.
	ProductionByID(id ProductionID) *Production

	// SymbolName renders a symbol for diagnostics and CLI output; it has
	// no bearing on the construction algorithm itself.
	SymbolName(s Symbol) string
}

// Grammar is the concrete, immutable View produced by GrammarBuilder.Build.
// Once built it never changes: every State that borrows its production
// data requires the grammar view to outlive it, which an immutable
// value trivially satisfies.
type Grammar struct {
	prods      *productionSet
	nonTermNum int
	termNum    int
	eps        Symbol
	eof        Symbol
	start      *Production
	names      map[Symbol]string
}

var _ View = (*Grammar)(nil)

func (g *Grammar) TerminalNum() int    { return g.termNum }
func (g *Grammar) NonTerminalNum() int { return g.nonTermNum }
func (g *Grammar) EPS() Symbol         { return g.eps }
func (g *Grammar) EOF() Symbol         { return g.eof }
func (g *Grammar) Start() *Production  { return g.start }

func (g *Grammar) ProductionsOf(nt Symbol) []*Production {
	return g.prods.findByLHS(nt)
}

func (g *Grammar) ProductionByID(id ProductionID) *Production {
	return g.prods.findByID(id)
}

func (g *Grammar) SymbolName(s Symbol) string {
	if name, ok := g.names[s]; ok {
		return name
	}
	return s.String()
}

// AllProductions returns every production in declaration order, start
// production included. Not part of View — it is used by diagnostics and
// tests that want to walk the whole grammar rather than one
// non-terminal's alternatives at a time.
func (g *Grammar) AllProductions() []*Production {
	return g.prods.all()
}
