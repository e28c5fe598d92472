package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nihei9/clr1/grammar"
)

// grammarDoc is the TOML shape lr1gen reads, e.g.:
//
//	start = "E"
//
//	[[rule]]
//	lhs = "E"
//	rhs = ["E", "+", "T"]
//
//	[[rule]]
//	lhs = "E"
//	rhs = ["T"]
//
//	[[rule]]
//	lhs = "T"
//	rhs = []
//
// Every name that appears only on the right-hand side of a rule and
// never as a lhs is taken to be a terminal; every name that appears as
// some rule's lhs is a non-terminal. An empty rhs is an epsilon rule.
type grammarDoc struct {
	Start string        `toml:"start"`
	Rules []grammarRule `toml:"rule"`
}

type grammarRule struct {
	LHS string   `toml:"lhs"`
	RHS []string `toml:"rhs"`
}

// loadGrammarDoc reads and parses a TOML grammar document from path.
func loadGrammarDoc(path string) (*grammarDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar file %s: %w", path, err)
	}
	var doc grammarDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse grammar file %s: %w", path, err)
	}
	if doc.Start == "" {
		return nil, fmt.Errorf("grammar file %s: \"start\" is required", path)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("grammar file %s: at least one [[rule]] is required", path)
	}
	return &doc, nil
}

// build translates the document into a grammar.View via GrammarBuilder.
// It is a thin CLI-side alternative to hand-writing DeclareNonTerminal/
// AddProduction calls: this package never touches grammar's internals,
// it only drives the builder collaborator grammar.go documents.
func (doc *grammarDoc) build() (*grammar.Grammar, error) {
	lhsNames := map[string]bool{}
	for _, r := range doc.Rules {
		lhsNames[r.LHS] = true
	}

	b := grammar.NewGrammarBuilder()
	syms := map[string]grammar.Symbol{}
	declare := func(name string) grammar.Symbol {
		if sym, ok := syms[name]; ok {
			return sym
		}
		var sym grammar.Symbol
		if lhsNames[name] {
			sym = b.DeclareNonTerminal(name)
		} else {
			sym = b.DeclareTerminal(name)
		}
		syms[name] = sym
		return sym
	}

	for _, r := range doc.Rules {
		lhs := declare(r.LHS)
		rhs := make([]grammar.Symbol, len(r.RHS))
		for i, name := range r.RHS {
			rhs[i] = declare(name)
		}
		b.AddProduction(lhs, rhs...)
	}

	start, ok := syms[doc.Start]
	if !ok || !lhsNames[doc.Start] {
		return nil, fmt.Errorf("start symbol %q is not the lhs of any rule", doc.Start)
	}
	b.SetStart(start)

	return b.Build()
}
