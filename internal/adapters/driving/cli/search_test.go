package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

func newOutputCmd(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	return cmd
}

func sampleRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          "r1",
			Name:        "肉じゃが",
			Description: "ほっとする定番の煮物。",
			Servings:    "2人分",
			CookingTime: "約30分",
			Ingredients: []domain.IngredientGroup{
				{Items: []string{"じゃがいも 3個"}},
				{SubHeading: "調味料", Items: []string{"醤油 大さじ2"}},
			},
			Instructions: []string{"切る", "煮る"},
		},
	}
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [ingredients]", searchCmd.Use)
}

func TestSearchCmd_Flags(t *testing.T) {
	servings, err := searchCmd.Flags().GetString("servings")
	require.NoError(t, err)
	assert.Equal(t, "2", servings)

	mealPrep, err := searchCmd.Flags().GetBool("meal-prep")
	require.NoError(t, err)
	assert.False(t, mealPrep)

	allergies, err := searchCmd.Flags().GetString("allergies")
	require.NoError(t, err)
	assert.Empty(t, allergies)
}

func TestOutputRecipesText(t *testing.T) {
	buf := new(bytes.Buffer)

	err := outputRecipesText(newOutputCmd(buf), sampleRecipes())

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "[1] 肉じゃが (約30分 · 2人分)")
	assert.Contains(t, out, "ほっとする定番の煮物。")
	assert.Contains(t, out, "調味料:")
	assert.Contains(t, out, "- 醤油 大さじ2")
	assert.Contains(t, out, "1. 切る")
	assert.Contains(t, out, "2. 煮る")
}

func TestOutputRecipesText_Empty(t *testing.T) {
	buf := new(bytes.Buffer)

	err := outputRecipesText(newOutputCmd(buf), nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "レシピが見つかりませんでした")
}

func TestOutputRecipesJSON(t *testing.T) {
	buf := new(bytes.Buffer)

	err := outputRecipesJSON(newOutputCmd(buf), sampleRecipes())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"肉じゃが"`)
	assert.Contains(t, buf.String(), `"r1"`)
}
