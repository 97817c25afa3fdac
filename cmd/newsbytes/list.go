package main

import (
	"fmt"
	"strings"

	"github.com/FenadoAI/newsbytes"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := newsbytes.ArticleFilter{Limit: c.Limit}
	if c.Category != "" {
		category, ok := matchCategory(c.Category)
		if !ok {
			fmt.Fprintf(deps.Stderr, "error: unknown category %q. Run 'newsbytes categories' to see valid values.\n", c.Category)
			return newsbytes.Errorf(newsbytes.EINVALID, "unknown category %q", c.Category)
		}
		filter.Category = &category
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsbytes.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsbytes scrape' to add some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  [%s]  %s  %s\n", a.ID, a.Category, a.SourceName, a.Title)
	}

	return nil
}

// matchCategory resolves a user-supplied category name case-insensitively.
func matchCategory(s string) (string, bool) {
	for _, c := range newsbytes.Categories {
		if strings.EqualFold(s, c) {
			return c, true
		}
	}
	return "", false
}
