package gemini

import (
	"strings"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// buildPrompt renders the recipe request for one query. Conditional
// lines appear only when the corresponding field is set.
func buildPrompt(query domain.Query) string {
	var b strings.Builder
	b.WriteString("「" + query.Ingredients + "」を使ったレシピを5つ提案してください。\n")
	b.WriteString("- 人数: " + query.Servings + "人前\n")
	if query.MealPrep {
		b.WriteString("- 作り置きに適したレシピを優先してください。\n")
	}
	if query.Allergies != "" {
		b.WriteString("- アレルギー/苦手な食材として「" + query.Allergies + "」は絶対に使用しないでください。\n")
	}
	b.WriteString("- レシピは多様なジャンルのものを提案してください。\n")
	b.WriteString("- 料理の簡単な説明を必ずdescriptionに含めてください。\n")
	b.WriteString("- レスポンスは必ず指定したJSONスキーマに従ってください。\n")
	return b.String()
}
