package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		keyStr string
		want   bool
	}{
		{name: "primary key", keyStr: "down", want: true},
		{name: "alias key", keyStr: "j", want: true},
		{name: "other key", keyStr: "x", want: false},
		{name: "empty string", keyStr: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.keyStr, km.Down))
		})
	}
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("esc", km.Back))
	assert.True(t, Matches("enter", km.Submit))
	assert.True(t, Matches(" ", km.Check))
	assert.True(t, Matches("ctrl+r", km.History))
	assert.True(t, Matches("ctrl+s", km.SaveAllergies))
	assert.True(t, Matches("1", km.TabSearch))
	assert.True(t, Matches("2", km.TabFavorites))
	assert.True(t, Matches("3", km.TabShopping))
	assert.True(t, Matches("t", km.Theme))
}

func TestHelpSets(t *testing.T) {
	km := DefaultKeyMap()

	require.NotEmpty(t, km.ShortHelp())
	require.NotEmpty(t, km.ResultsHelp())
	require.NotEmpty(t, km.DetailHelp())

	for _, binding := range km.ShortHelp() {
		assert.NotEmpty(t, binding.Help().Key)
		assert.NotEmpty(t, binding.Help().Desc)
	}
}
