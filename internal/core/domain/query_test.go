package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name        string
		ingredients string
		wantErr     error
	}{
		{name: "valid ingredients", ingredients: "鶏肉、玉ねぎ", wantErr: nil},
		{name: "empty", ingredients: "", wantErr: ErrEmptyIngredients},
		{name: "whitespace only", ingredients: "   \t", wantErr: ErrEmptyIngredients},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Query{Ingredients: tt.ingredients}.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuery_Normalize(t *testing.T) {
	query := Query{
		Ingredients: "  鶏肉、玉ねぎ ",
		Servings:    "2",
		Allergies:   " えび ",
	}

	normalized := query.Normalize()

	assert.Equal(t, "鶏肉、玉ねぎ", normalized.Ingredients)
	assert.Equal(t, "えび", normalized.Allergies)
	assert.Equal(t, "2", normalized.Servings)
	// Normalize is value-receiver; the original is untouched.
	assert.Equal(t, "  鶏肉、玉ねぎ ", query.Ingredients)
}

func TestTheme_IsValid(t *testing.T) {
	assert.True(t, ThemeDark.IsValid())
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeSystem.IsValid())
	assert.False(t, Theme("sepia").IsValid())
}
