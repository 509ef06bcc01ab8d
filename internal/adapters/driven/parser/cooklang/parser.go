// Package cooklang adapts the aquilax/cooklang-go parser to the recipe
// parser port.
package cooklang

import (
	"strconv"

	cook "github.com/aquilax/cooklang-go"

	"github.com/farooqu/cooklang-store/internal/core/domain"
	"github.com/farooqu/cooklang-store/internal/core/ports/driven"
)

var _ driven.RecipeParser = (*Parser)(nil)

// Parser parses cooklang recipe text. The frontmatter block is stripped
// before parsing since it is not part of the cooklang grammar.
type Parser struct{}

// New returns a cooklang parser.
func New() *Parser { return &Parser{} }

// Parse implements driven.RecipeParser.
func (p *Parser) Parse(content string) (*domain.ParsedRecipe, error) {
	body := domain.StripFrontmatter(content)

	recipe, err := cook.ParseString(body)
	if err != nil {
		return nil, domain.NewValidationError("invalid recipe body", err)
	}

	parsed := &domain.ParsedRecipe{
		Metadata: recipe.Metadata,
		Steps:    make([]domain.Step, 0, len(recipe.Steps)),
	}
	for _, step := range recipe.Steps {
		s := domain.Step{Directions: step.Directions}
		for _, ing := range step.Ingredients {
			s.Ingredients = append(s.Ingredients, domain.Ingredient{
				Name:     ing.Name,
				Quantity: ing.Amount.QuantityRaw,
				Unit:     ing.Amount.Unit,
			})
		}
		for _, cw := range step.Cookware {
			s.Cookware = append(s.Cookware, cw.Name)
		}
		for _, tm := range step.Timers {
			s.Timers = append(s.Timers, domain.Timer{
				Name:     tm.Name,
				Duration: strconv.FormatFloat(tm.Duration, 'f', -1, 64),
				Unit:     tm.Unit,
			})
		}
		parsed.Steps = append(parsed.Steps, s)
	}
	return parsed, nil
}
