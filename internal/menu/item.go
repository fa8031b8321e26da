package menu

// Item is a single selectable entry: a name plus a free-form detail
// column (script command, task description, session info). Items are
// immutable once loaded; the list is fetched once per session and
// never refreshed while the menu is on screen.
type Item struct {
	Name   string
	Detail string
}

// LongestName returns the widest name in rendered columns. Used by the
// renderer to size the name column; 0 for an empty list.
func LongestName(items []Item, measure func(string) int) int {
	longest := 0
	for _, item := range items {
		if w := measure(item.Name); w > longest {
			longest = w
		}
	}
	return longest
}
