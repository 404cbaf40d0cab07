package domain

import "strings"

// ShoppingEntry accumulates the ingredient lines flagged for purchase
// from one recipe. RecipeInfo is a snapshot taken on first add and is
// not refreshed by later merges.
type ShoppingEntry struct {
	RecipeInfo RecipeInfo `json:"recipeInfo"`
	Items      []string   `json:"items"`
}

// hasItem reports whether the entry already holds an ingredient line.
func (e *ShoppingEntry) hasItem(item string) bool {
	for _, existing := range e.Items {
		if existing == item {
			return true
		}
	}
	return false
}

// merge unions new ingredient lines into the entry, keeping first-add order.
func (e *ShoppingEntry) merge(items []string) {
	for _, item := range items {
		if !e.hasItem(item) {
			e.Items = append(e.Items, item)
		}
	}
}

// ShoppingList maps recipes to their flagged ingredient lines. Entries
// keep insertion order for rendering; per-recipe item sets are unions,
// so adding the same checked set twice is a no-op.
type ShoppingList struct {
	entries []*ShoppingEntry
}

// NewShoppingList builds a list from persisted entries, deduplicating
// items inside each entry to restore set semantics.
func NewShoppingList(entries []ShoppingEntry) *ShoppingList {
	l := &ShoppingList{}
	for _, e := range entries {
		l.Add(e.RecipeInfo, e.Items)
	}
	return l
}

// Add merges ingredient lines into the entry for info.ID, creating the
// entry lazily on first add.
func (l *ShoppingList) Add(info RecipeInfo, items []string) {
	for _, e := range l.entries {
		if e.RecipeInfo.ID == info.ID {
			e.merge(items)
			return
		}
	}
	entry := &ShoppingEntry{RecipeInfo: info}
	entry.merge(items)
	l.entries = append(l.entries, entry)
}

// Remove deletes the entire entry for one recipe ID.
// There is no per-ingredient removal.
func (l *ShoppingList) Remove(recipeID string) {
	for i, e := range l.entries {
		if e.RecipeInfo.ID == recipeID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Get returns the entry for a recipe ID, or nil.
func (l *ShoppingList) Get(recipeID string) *ShoppingEntry {
	for _, e := range l.entries {
		if e.RecipeInfo.ID == recipeID {
			return e
		}
	}
	return nil
}

// Entries returns the entries in insertion order.
func (l *ShoppingList) Entries() []ShoppingEntry {
	out := make([]ShoppingEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, *e)
	}
	return out
}

// Count returns the number of recipes on the list.
func (l *ShoppingList) Count() int {
	return len(l.entries)
}

// ExportText renders the list as plain text for the clipboard.
func (l *ShoppingList) ExportText() string {
	var b strings.Builder
	b.WriteString("買い物リスト\n==========\n\n")
	for _, e := range l.entries {
		b.WriteString("■ " + e.RecipeInfo.Name + "\n")
		for _, item := range e.Items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
