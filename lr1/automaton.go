package lr1

import (
	"sort"

	"github.com/nihei9/clr1/bitset"
	"github.com/nihei9/clr1/grammar"
)

// StateItem is one (item, lookahead set) pair of a state, in canonical
// item order.
type StateItem struct {
	Item      Item
	Lookahead *bitset.Set
}

// State is one member of the canonical LR(1) collection: a closed,
// canonicalized item set plus the transitions GOTO defines out of it.
// States are numbered in discovery order starting at 0, and state 0 is
// always the closure of the augmented start item.
type State struct {
	ID    int
	Items []StateItem

	// Transitions maps a grammar symbol to the id of the state GOTO
	// reaches on that symbol. It has one entry per distinct symbol any
	// item in Items is dotted on.
	Transitions map[grammar.Symbol]int
}

// Lookahead returns the lookahead set recorded for it in this
// state, or nil if it is not one of the state's items.
func (s *State) Lookahead(it Item) *bitset.Set {
	for _, si := range s.Items {
		if si.Item == it {
			return si.Lookahead
		}
	}
	return nil
}

// BuildLR1 computes the canonical collection of LR(1) states for g,
// starting from the closure of [S' -> ·S, EOF] and repeatedly applying
// GOTO over every symbol any state is dotted on until no new state
// appears.
func BuildLR1(g grammar.View) ([]*State, error) {
	first, err := grammar.BuildFirst(g)
	if err != nil {
		return nil, err
	}

	width := g.TerminalNum() + 1
	startLA := bitset.New(width)
	startLA.Set(termIndex(g, g.EOF()))

	seed := itemSet{
		{Prod: g.Start().ID, Dot: 0}: startLA,
	}
	startItems := closure(g, first, seed)

	var states []*State
	keyToID := map[string]int{}

	register := func(items itemSet) int {
		key := canonicalKey(items)
		if id, ok := keyToID[key]; ok {
			return id
		}
		id := len(states)
		keyToID[key] = id
		states = append(states, &State{
			ID:          id,
			Items:       canonicalItems(items),
			Transitions: map[grammar.Symbol]int{},
		})
		return id
	}

	register(startItems)

	// Worklist over state ids: states is appended to as new states are
	// discovered, so ranging by index (rather than snapshotting a slice)
	// naturally processes newly discovered states too.
	for i := 0; i < len(states); i++ {
		st := states[i]
		items := toItemSet(st.Items)
		for _, x := range dottedSymbols(g, items) {
			moved := goTo(g, first, items, x)
			if moved == nil {
				continue
			}
			targetID := register(moved)
			st.Transitions[x] = targetID
		}
	}

	return states, nil
}

// canonicalItems sorts items's entries into canonical item order for
// storage in a State.
func canonicalItems(items itemSet) []StateItem {
	out := make([]StateItem, 0, len(items))
	for it, la := range items {
		out = append(out, StateItem{Item: it, Lookahead: la})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.Less(out[j].Item) })
	return out
}

func toItemSet(items []StateItem) itemSet {
	m := make(itemSet, len(items))
	for _, si := range items {
		m[si.Item] = si.Lookahead
	}
	return m
}

// termIndex re-exposes grammar's zero-based terminal offset for use by
// the lookahead bitsets lr1 builds; it mirrors the offset
// grammar.First uses internally so the two packages' bitsets line up
// bit-for-bit.
func termIndex(g grammar.View, s grammar.Symbol) int {
	return int(s) - g.NonTerminalNum()
}
