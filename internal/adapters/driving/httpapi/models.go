package httpapi

import "github.com/farooqu/cooklang-store/internal/core/domain"

// recipeSummary is the listing shape; it never carries recipe text.
type recipeSummary struct {
	RecipeID    string `json:"recipeId"`
	RecipeName  string `json:"recipeName"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	FileName    string `json:"fileName"`
}

// recipeDetail is the single-recipe shape, summary plus the raw text.
type recipeDetail struct {
	recipeSummary
	Content string `json:"content"`
}

// recipeList wraps a page of summaries with the total match count so
// clients can page without a second request.
type recipeList struct {
	Recipes []recipeSummary `json:"recipes"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

type createRecipeRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

type updateRecipeRequest struct {
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type statusResponse struct {
	Status      string `json:"status"`
	RecipeCount int    `json:"recipeCount"`
	Categories  int    `json:"categoryCount"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toSummary(r domain.Recipe) recipeSummary {
	return recipeSummary{
		RecipeID:    r.ID,
		RecipeName:  r.Title,
		Description: r.Description,
		Category:    r.Category,
		FileName:    r.Filename,
	}
}

func toDetail(r *domain.Recipe) recipeDetail {
	return recipeDetail{
		recipeSummary: toSummary(*r),
		Content:       r.Content,
	}
}

func toSummaries(recipes []domain.Recipe) []recipeSummary {
	out := make([]recipeSummary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toSummary(r))
	}
	return out
}
