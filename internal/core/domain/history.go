package domain

import "github.com/google/uuid"

// HistoryItem is one completed search: its query and its paginated
// result pages. Pages is append-only; CurrentPage is the only field
// mutated after creation and always satisfies
// 0 <= CurrentPage < len(Pages) while Pages is non-empty.
type HistoryItem struct {
	ID          string     `json:"id"`
	Query       Query      `json:"query"`
	Pages       [][]Recipe `json:"pages"`
	CurrentPage int        `json:"currentPageIndex"`
}

// NewHistoryItem creates a history entry for a successful search with
// its first (and, with the current request contract, only) page.
func NewHistoryItem(query Query, recipes []Recipe) *HistoryItem {
	return &HistoryItem{
		ID:          "history-" + uuid.NewString(),
		Query:       query,
		Pages:       [][]Recipe{recipes},
		CurrentPage: 0,
	}
}

// CurrentRecipes returns the recipes of the page CurrentPage points at.
func (h *HistoryItem) CurrentRecipes() []Recipe {
	if len(h.Pages) == 0 {
		return nil
	}
	return h.Pages[h.CurrentPage]
}

// PageCount returns the number of result pages.
func (h *HistoryItem) PageCount() int {
	return len(h.Pages)
}

// HasNext reports whether a later page exists.
func (h *HistoryItem) HasNext() bool {
	return h.CurrentPage < len(h.Pages)-1
}

// HasPrev reports whether an earlier page exists.
func (h *HistoryItem) HasPrev() bool {
	return h.CurrentPage > 0
}

// NextPage advances to the next page. Returns false (and leaves the
// item untouched) at the last page; there is no wraparound.
func (h *HistoryItem) NextPage() bool {
	if !h.HasNext() {
		return false
	}
	h.CurrentPage++
	return true
}

// PrevPage moves to the previous page. Returns false at the first page.
func (h *HistoryItem) PrevPage() bool {
	if !h.HasPrev() {
		return false
	}
	h.CurrentPage--
	return true
}

// AppendPage adds a page of recipes. The request contract currently
// only ever produces one page; this keeps pagination generic anyway.
func (h *HistoryItem) AppendPage(recipes []Recipe) {
	h.Pages = append(h.Pages, recipes)
}

// Normalize clamps CurrentPage back into range. Used after loading
// persisted history that may have been edited or corrupted.
func (h *HistoryItem) Normalize() {
	if len(h.Pages) == 0 {
		h.CurrentPage = 0
		return
	}
	if h.CurrentPage < 0 {
		h.CurrentPage = 0
	}
	if h.CurrentPage >= len(h.Pages) {
		h.CurrentPage = len(h.Pages) - 1
	}
}

// FindRecipe scans every page of every history item for a recipe by ID.
// Returns nil when no history entry contains it any more.
func FindRecipe(history []*HistoryItem, id string) *Recipe {
	for _, item := range history {
		for _, page := range item.Pages {
			for i := range page {
				if page[i].ID == id {
					return &page[i]
				}
			}
		}
	}
	return nil
}
