package db

import "golang.org/x/text/cases"

// FoldName case-folds s for the recipe_name_folded column and for search
// patterns. Both backends compare folded forms only, so matching does not
// depend on the database collation.
func FoldName(s string) string {
	return cases.Fold().String(s)
}
