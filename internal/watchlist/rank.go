package watchlist

import "sort"

// Rank returns a copy of items in display order: descending by value ratio,
// ties keeping their relative input order. The ranking is advisory and never
// touches the store; budget evaluation deliberately uses the persisted order
// instead, since the user's chosen watch sequence decides the budget cut
// line.
func Rank(items []Item) []Item {
	ranked := append([]Item(nil), items...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ValueRatio() > ranked[j].ValueRatio()
	})
	return ranked
}
