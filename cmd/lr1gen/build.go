package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/clr1/grammar"
	"github.com/nihei9/clr1/lr1"
)

var buildFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build <grammar.toml>",
		Short:   "Build the canonical LR(1) collection and print it as JSON",
		Example: `  lr1gen build expr.toml -o expr.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runBuild,
	}
	buildFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

// automatonReport is the JSON rendering of a built automaton: plain
// enough to diff in a code review, unlike a raw dump of *lr1.State
// (whose Items are unexported-bitset-backed and not meant for
// marshaling).
type automatonReport struct {
	StateCount int           `json:"state_count"`
	States     []stateReport `json:"states"`
}

type stateReport struct {
	ID          int            `json:"id"`
	Items       []itemReport   `json:"items"`
	Transitions map[string]int `json:"transitions"`
}

type itemReport struct {
	Production int      `json:"production"`
	LHS        string   `json:"lhs"`
	Dot        int      `json:"dot"`
	RHS        []string `json:"rhs"`
	Lookahead  []string `json:"lookahead"`
}

func buildAutomaton(path string) (*grammar.Grammar, []*lr1.State, error) {
	doc, err := loadGrammarDoc(path)
	if err != nil {
		return nil, nil, err
	}

	tracer().Debugf("building grammar view from %s", path)
	g, err := doc.build()
	if err != nil {
		return nil, nil, err
	}

	tracer().Debugf("building canonical LR(1) collection")
	states, err := lr1.BuildLR1(g)
	if err != nil {
		return nil, nil, err
	}
	tracer().Infof("built %d states", len(states))

	return g, states, nil
}

func toReport(g *grammar.Grammar, states []*lr1.State) automatonReport {
	report := automatonReport{StateCount: len(states)}
	for _, s := range states {
		sr := stateReport{ID: s.ID, Transitions: map[string]int{}}
		for sym, target := range s.Transitions {
			sr.Transitions[g.SymbolName(sym)] = target
		}
		for _, si := range s.Items {
			p := si.Item.Production(g)
			rhs := make([]string, len(p.RHS))
			for i, sym := range p.RHS {
				rhs[i] = g.SymbolName(sym)
			}
			var lookahead []string
			for _, bit := range si.Lookahead.Bits() {
				if bit == si.Lookahead.Width()-1 {
					continue // the reserved propagation slot, never a real terminal
				}
				lookahead = append(lookahead, g.SymbolName(symbolFromTermOffsetForReport(g, bit)))
			}
			sr.Items = append(sr.Items, itemReport{
				Production: int(si.Item.Prod),
				LHS:        g.SymbolName(p.LHS),
				Dot:        si.Item.Dot,
				RHS:        rhs,
				Lookahead:  lookahead,
			})
		}
		report.States = append(report.States, sr)
	}
	return report
}

// symbolFromTermOffsetForReport converts a zero-based terminal bit
// index back into the Symbol g.SymbolName expects. Only the CLI needs
// this inverse mapping; the core packages never expose it because
// nothing inside lr1 or grammar needs to go from a bit index back to a
// Symbol, only the other way around.
func symbolFromTermOffsetForReport(g *grammar.Grammar, bit int) grammar.Symbol {
	return grammar.Symbol(uint32(bit) + uint32(g.NonTerminalNum()))
}

func runBuild(cmd *cobra.Command, args []string) error {
	g, states, err := buildAutomaton(args[0])
	if err != nil {
		return err
	}

	report := toReport(g, states)
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if *buildFlags.output == "" {
		fmt.Fprintln(os.Stdout, string(b))
		return nil
	}
	return os.WriteFile(*buildFlags.output, append(b, '\n'), 0644)
}
