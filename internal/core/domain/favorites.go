package domain

import (
	"encoding/json"
	"sort"
)

// Favorites is the user-curated set of liked recipe IDs. Membership is
// independent of whether any history entry still contains the recipe;
// resolution back to a Recipe happens at render time via FindRecipe.
type Favorites map[string]struct{}

// NewFavorites builds a set from a slice of IDs.
func NewFavorites(ids []string) Favorites {
	f := make(Favorites, len(ids))
	for _, id := range ids {
		f[id] = struct{}{}
	}
	return f
}

// Has reports membership.
func (f Favorites) Has(id string) bool {
	_, ok := f[id]
	return ok
}

// Toggle flips membership and returns the new state.
// Toggling twice always restores the original membership.
func (f Favorites) Toggle(id string) bool {
	if f.Has(id) {
		delete(f, id)
		return false
	}
	f[id] = struct{}{}
	return true
}

// Count returns the number of favorites.
func (f Favorites) Count() int {
	return len(f)
}

// IDs returns the member IDs in sorted order so serialization is
// deterministic; set order is not semantically meaningful.
func (f Favorites) IDs() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalJSON serializes the set as an ordered sequence of IDs.
func (f Favorites) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.IDs())
}

// UnmarshalJSON reconstructs set semantics from a sequence of IDs.
func (f *Favorites) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*f = NewFavorites(ids)
	return nil
}
