package grammar

import (
	"fmt"

	"github.com/nihei9/clr1/grammarerr"
)

// pendingProduction is a not-yet-assigned-an-id production captured by
// AddProduction before Build computes final symbol ids.
type pendingProduction struct {
	lhs string
	rhs []string
}

// GrammarBuilder is a programmatic construction surface: a caller
// declares non-terminals, terminals, and productions, then calls Build
// to get a View. It is not a parser for any textual grammar notation —
// see the package doc comment.
//
// GrammarBuilder is not safe for concurrent use; build a Grammar, then
// share the immutable result across goroutines.
type GrammarBuilder struct {
	nonTerms   []string
	nonTermIdx map[string]int

	// terms[0] and terms[1] are always the reserved EPS and EOF names;
	// user terminals start at index 2.
	terms   []string
	termIdx map[string]int

	prods []pendingProduction
	start string
}

const (
	epsName = "<eps>"
	eofName = "<eof>"
)

// NewGrammarBuilder returns an empty builder with the EPS and EOF
// terminals already reserved.
func NewGrammarBuilder() *GrammarBuilder {
	b := &GrammarBuilder{
		nonTermIdx: map[string]int{},
		termIdx:    map[string]int{},
	}
	b.terms = append(b.terms, epsName, eofName)
	b.termIdx[epsName] = 0
	b.termIdx[eofName] = 1
	return b
}

// DeclareNonTerminal registers name if it is not already known and
// returns its Symbol. Calling it twice for the same name is a no-op
// that returns the same Symbol.
func (b *GrammarBuilder) DeclareNonTerminal(name string) Symbol {
	if i, ok := b.nonTermIdx[name]; ok {
		return Symbol(i)
	}
	i := len(b.nonTerms)
	b.nonTerms = append(b.nonTerms, name)
	b.nonTermIdx[name] = i
	return Symbol(i)
}

// DeclareTerminal registers name if it is not already known and returns
// its Symbol. The returned id is only meaningful after Build assigns the
// final non-terminal count offset.
func (b *GrammarBuilder) DeclareTerminal(name string) Symbol {
	if i, ok := b.termIdx[name]; ok {
		return symbolFromTermOffset(i)
	}
	i := len(b.terms)
	b.terms = append(b.terms, name)
	b.termIdx[name] = i
	return symbolFromTermOffset(i)
}

// symbolFromTermOffset is a placeholder Symbol used before Build knows
// the final non-terminal count; Build rewrites productions using the
// builder's own name tables rather than trusting these raw values, so
// the offset only needs to be stable and distinct per terminal during
// the building phase.
func symbolFromTermOffset(i int) Symbol {
	return Symbol(uint32(i) | termTagBit)
}

// termTagBit marks a Symbol returned by DeclareTerminal/AddProduction
// before Build as "a terminal-table offset, not a final id". It is
// cleared by Build when translating pending productions into their
// final grammar.Production form. Using a tag bit (rather than returning
// an opaque handle type) keeps GrammarBuilder's public API in terms of
// the same Symbol type View uses, at the cost of this one internal
// convention.
const termTagBit = uint32(1) << 31

func (b *GrammarBuilder) nameOf(sym Symbol) (name string, isTerm bool) {
	if uint32(sym)&termTagBit != 0 {
		return b.terms[int(uint32(sym)&^termTagBit)], true
	}
	return b.nonTerms[int(sym)], false
}

// AddProduction records lhs -> rhs. rhs may be empty for an
// epsilon production. Both lhs and the elements of rhs must have come
// from this builder's DeclareNonTerminal/DeclareTerminal.
func (b *GrammarBuilder) AddProduction(lhs Symbol, rhs ...Symbol) {
	lhsName, isTerm := b.nameOf(lhs)
	if isTerm {
		panic(fmt.Sprintf("grammar: production LHS %q is a terminal", lhsName))
	}
	rhsNames := make([]string, len(rhs))
	for i, s := range rhs {
		name, _ := b.nameOf(s)
		rhsNames[i] = name
	}
	b.prods = append(b.prods, pendingProduction{lhs: lhsName, rhs: rhsNames})
}

// SetStart designates nt as the grammar's start symbol. Build augments
// it with a fresh non-terminal S' and the unique production S' -> nt.
func (b *GrammarBuilder) SetStart(nt Symbol) {
	name, isTerm := b.nameOf(nt)
	if isTerm {
		panic(fmt.Sprintf("grammar: start symbol %q is a terminal", name))
	}
	b.start = name
}

// Build validates and freezes the declared grammar into a View.
func (b *GrammarBuilder) Build() (*Grammar, error) {
	if b.start == "" {
		return nil, grammarerr.Shapef("no start symbol declared")
	}
	if _, ok := b.nonTermIdx[b.start]; !ok {
		return nil, grammarerr.Shapef("start symbol %q was never declared", b.start)
	}

	// The augmented start non-terminal is appended last, so every
	// user-declared non-terminal keeps the id DeclareNonTerminal handed
	// out; only the count N changes.
	augStartName := b.start + "'"
	for {
		if _, clash := b.nonTermIdx[augStartName]; !clash {
			break
		}
		augStartName += "'"
	}
	nonTerms := append(append([]string{}, b.nonTerms...), augStartName)
	nonTermIdx := map[string]int{}
	for i, name := range nonTerms {
		nonTermIdx[name] = i
	}

	termIdx := map[string]int{}
	for i, name := range b.terms {
		termIdx[name] = i
	}

	toSymbol := func(name string) Symbol {
		if i, ok := nonTermIdx[name]; ok {
			return Symbol(i)
		}
		i, ok := termIdx[name]
		if !ok {
			panic(fmt.Sprintf("grammar: unknown symbol %q", name))
		}
		return Symbol(len(nonTerms) + i)
	}

	prods := newProductionSet()
	names := map[Symbol]string{}
	for i, name := range nonTerms {
		names[Symbol(i)] = name
	}
	for i, name := range b.terms {
		names[Symbol(len(nonTerms)+i)] = name
	}

	for _, pp := range b.prods {
		rhs := make([]Symbol, len(pp.rhs))
		for i, n := range pp.rhs {
			rhs[i] = toSymbol(n)
		}
		prods.append(toSymbol(pp.lhs), rhs)
	}

	startProd := prods.append(Symbol(len(nonTerms)-1), []Symbol{toSymbol(b.start)})

	g := &Grammar{
		prods:      prods,
		nonTermNum: len(nonTerms),
		termNum:    len(b.terms),
		eps:        Symbol(len(nonTerms) + 0),
		eof:        Symbol(len(nonTerms) + 1),
		start:      startProd,
		names:      names,
	}

	for _, p := range prods.all() {
		for _, s := range p.RHS {
			if uint32(s) >= uint32(g.nonTermNum+g.termNum) {
				return nil, grammarerr.Shapef("production %d references out-of-range symbol %d", p.ID, s)
			}
		}
	}

	return g, nil
}
