package main

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nihei9/clr1/grammar"
	"github.com/nihei9/clr1/lr1"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar.toml>",
		Short:   "Print the canonical LR(1) collection as a tree",
		Example: `  lr1gen show expr.toml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, states, err := buildAutomaton(args[0])
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println(fmt.Sprintf("%d states", len(states)))
	root := pterm.NewTreeFromLeveledList(stateListing(g, states))
	return pterm.DefaultTree.WithRoot(root).Render()
}

// stateListing flattens the automaton into the level/text pairs
// pterm.NewTreeFromLeveledList expects: one root per state, one child
// per item, and one child per outgoing transition. Transition targets
// are collected into a gods arraylist and sorted with utils.IntComparator
// before printing, so the tree's children come out in a stable order
// independent of Go's map iteration.
func stateListing(g *grammar.Grammar, states []*lr1.State) pterm.LeveledList {
	var ll pterm.LeveledList
	for _, s := range states {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("state %d", s.ID)})
		for _, si := range s.Items {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: itemText(g, si)})
		}

		targets := arraylist.New()
		symByTarget := map[int]grammar.Symbol{}
		for sym, target := range s.Transitions {
			targets.Add(target)
			symByTarget[target] = sym
		}
		targets.Sort(utils.IntComparator)
		targets.Each(func(_ int, v interface{}) {
			target := v.(int)
			sym := symByTarget[target]
			ll = append(ll, pterm.LeveledListItem{
				Level: 1,
				Text:  fmt.Sprintf("on %s -> state %d", g.SymbolName(sym), target),
			})
		})
	}
	return ll
}

func itemText(g *grammar.Grammar, si lr1.StateItem) string {
	p := si.Item.Production(g)
	rhs := ""
	for i, sym := range p.RHS {
		if i == si.Item.Dot {
			rhs += "· "
		}
		rhs += g.SymbolName(sym) + " "
	}
	if si.Item.Dot == len(p.RHS) {
		rhs += "·"
	}
	return fmt.Sprintf("%s -> %s", g.SymbolName(p.LHS), rhs)
}
