package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

var (
	searchServings  string
	searchMealPrep  bool
	searchAllergies string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [ingredients]",
	Short: "Suggest recipes for the given ingredients",
	Long: `Performs a one-shot recipe search and prints the suggestions.

Ingredients are a single argument, separated by commas:
  reshipi search "鶏肉、玉ねぎ、じゃがいも" --servings 4`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchServings, "servings", "2", "number of servings")
	searchCmd.Flags().BoolVar(&searchMealPrep, "meal-prep", false, "prefer make-ahead recipes")
	searchCmd.Flags().StringVar(&searchAllergies, "allergies", "", "ingredients to exclude")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	query := domain.Query{
		Ingredients: args[0],
		Servings:    searchServings,
		MealPrep:    searchMealPrep,
		Allergies:   searchAllergies,
	}

	item, err := a.Search.Submit(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	recipes := item.CurrentRecipes()
	if searchJSON {
		return outputRecipesJSON(cmd, recipes)
	}
	return outputRecipesText(cmd, recipes)
}

func outputRecipesJSON(cmd *cobra.Command, recipes []domain.Recipe) error {
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recipes: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecipesText(cmd *cobra.Command, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		cmd.Println("レシピが見つかりませんでした。")
		return nil
	}

	for i := range recipes {
		r := &recipes[i]
		cmd.Printf("[%d] %s (%s · %s)\n", i+1, r.Name, r.CookingTime, r.Servings)
		if r.Description != "" {
			cmd.Printf("    %s\n", r.Description)
		}
		for _, group := range r.Ingredients {
			if group.SubHeading != "" {
				cmd.Printf("    %s:\n", group.SubHeading)
			}
			for _, item := range group.Items {
				cmd.Printf("    - %s\n", item)
			}
		}
		for j, step := range r.Instructions {
			cmd.Printf("    %d. %s\n", j+1, step)
		}
		cmd.Println()
	}
	return nil
}
