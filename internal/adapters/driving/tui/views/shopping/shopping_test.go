package shopping

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// MockShoppingListService implements driving.ShoppingListService for testing.
type MockShoppingListService struct {
	List    *domain.ShoppingList
	CopyErr error
	Copied  string
}

func (m *MockShoppingListService) list() *domain.ShoppingList {
	if m.List == nil {
		m.List = domain.NewShoppingList(nil)
	}
	return m.List
}

func (m *MockShoppingListService) Add(info domain.RecipeInfo, items []string) error {
	if len(items) == 0 {
		return domain.ErrNothingChecked
	}
	m.list().Add(info, items)
	return nil
}

func (m *MockShoppingListService) Remove(recipeID string)          { m.list().Remove(recipeID) }
func (m *MockShoppingListService) Entries() []domain.ShoppingEntry { return m.list().Entries() }
func (m *MockShoppingListService) Count() int                      { return m.list().Count() }
func (m *MockShoppingListService) ExportText() string              { return m.list().ExportText() }

func (m *MockShoppingListService) CopyToClipboard() error {
	if m.CopyErr != nil {
		return m.CopyErr
	}
	m.Copied = m.list().ExportText()
	return nil
}

func newTestView(t *testing.T) (*View, *MockShoppingListService) {
	t.Helper()

	svc := &MockShoppingListService{}
	require.NoError(t, svc.Add(domain.RecipeInfo{ID: "r1", Name: "肉じゃが"}, []string{"じゃがいも 3個"}))
	require.NoError(t, svc.Add(domain.RecipeInfo{ID: "r2", Name: "親子丼"}, []string{"卵 2個", "鶏肉 100g"}))

	v := NewView(nil, nil, svc)
	v.SetDimensions(80, 24)
	v.Init()
	return v, svc
}

func TestView_RendersEntries(t *testing.T) {
	v, _ := newTestView(t)

	out := v.View()
	assert.Contains(t, out, "買い物リスト")
	assert.Contains(t, out, "■ 肉じゃが")
	assert.Contains(t, out, "- じゃがいも 3個")
	assert.Contains(t, out, "■ 親子丼")
	assert.Contains(t, out, "- 鶏肉 100g")
}

func TestView_EmptyState(t *testing.T) {
	v := NewView(nil, nil, &MockShoppingListService{})
	v.Init()

	assert.Contains(t, v.View(), "リストは空です")
}

func TestView_RemoveEntry(t *testing.T) {
	v, svc := newTestView(t)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	entries := svc.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "r2", entries[0].RecipeInfo.ID)
}

func TestView_RemoveLastEntryClampsSelection(t *testing.T) {
	v, svc := newTestView(t)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	require.Equal(t, 1, v.SelectedIndex())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Equal(t, 1, svc.Count())
	assert.Equal(t, 0, v.SelectedIndex())
}

func TestView_CopySuccess(t *testing.T) {
	v, svc := newTestView(t)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.NotNil(t, cmd)

	assert.Contains(t, v.Flash(), "コピーしました")
	assert.Equal(t, svc.ExportText(), svc.Copied)

	v, _ = v.Update(messages.FlashExpired{})
	assert.Empty(t, v.Flash())
}

func TestView_CopyFailureShowsError(t *testing.T) {
	v, svc := newTestView(t)
	svc.CopyErr = errors.New("no clipboard")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.NotNil(t, cmd)

	assert.Contains(t, v.Flash(), "コピーできませんでした")
	assert.Contains(t, v.Flash(), "no clipboard")
}

func TestView_CopyEmptyListIsNoop(t *testing.T) {
	svc := &MockShoppingListService{}
	v := NewView(nil, nil, svc)
	v.Init()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})

	assert.Nil(t, cmd)
	assert.Empty(t, v.Flash())
	assert.Empty(t, svc.Copied)
}
