package gemini

// Schema is a subset of the Gemini structured-output schema language,
// enough to constrain responses to the recipe shape.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// recipeResponseSchema constrains the model to an array of recipe
// objects. Field descriptions are part of the contract: they steer the
// model toward the formats the renderer expects.
func recipeResponseSchema() *Schema {
	return &Schema{
		Type: "ARRAY",
		Items: &Schema{
			Type: "OBJECT",
			Properties: map[string]*Schema{
				"recipeName":  {Type: "STRING", Description: "料理名"},
				"description": {Type: "STRING", Description: "料理の簡単な説明(2-3文)"},
				"servings":    {Type: "STRING", Description: `何人前かを示す文字列 (例: "2人分")`},
				"cookingTime": {Type: "STRING", Description: `調理時間 (例: "約20分")`},
				"ingredients": {
					Type:        "ARRAY",
					Description: "材料のリスト。肉や野菜などの主要な材料と、調味料などを分けるためにsubHeadingを使用する。",
					Items: &Schema{
						Type: "OBJECT",
						Properties: map[string]*Schema{
							"subHeading": {Type: "STRING", Description: `材料の小見出し (例: "豚バラ肉", "合わせ調味料")。不要な場合は省略。`},
							"items": {
								Type:  "ARRAY",
								Items: &Schema{Type: "STRING", Description: `材料とその分量 (例: "豚バラ薄切り肉 200g")`},
							},
						},
						Required: []string{"items"},
					},
				},
				"instructions": {
					Type:        "ARRAY",
					Description: "作り方の手順リスト",
					Items:       &Schema{Type: "STRING"},
				},
			},
			Required: []string{"recipeName", "servings", "cookingTime", "ingredients", "instructions", "description"},
		},
	}
}
