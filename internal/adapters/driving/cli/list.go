package cli

import (
	"context"
	"sort"

	"github.com/spf13/cobra"

	"github.com/farooqu/cooklang-store/internal/core/domain"
)

var (
	listCategory   string
	listSearch     string
	listIngredient string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes in the store",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only recipes in this category")
	listCmd.Flags().StringVar(&listSearch, "search", "", "only recipes whose title matches")
	listCmd.Flags().StringVar(&listIngredient, "ingredient", "", "only recipes using this ingredient")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := initService(); err != nil {
		return err
	}

	ctx := context.Background()

	var found []domain.Recipe
	switch {
	case listSearch != "":
		found = recipes.SearchByName(ctx, listSearch)
	case listIngredient != "":
		found = recipes.FilterByIngredient(ctx, listIngredient)
	case listCategory != "":
		found = recipes.ListByCategory(ctx, listCategory)
	default:
		found = recipes.ListAll(ctx)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })

	if len(found) == 0 {
		cmd.Println("No recipes found.")
		return nil
	}
	for _, r := range found {
		cmd.Printf("%s  %-40s %s\n", r.ID, r.Title, r.Path)
	}
	cmd.Printf("\n%d recipe(s)\n", len(found))
	return nil
}
