package main

import (
	"fmt"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Run(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	for _, a := range result.Articles {
		fmt.Fprintf(deps.Stdout, "%s  [%s]  %s\n", a.SourceName, a.Category, a.Title)
		fmt.Fprintf(deps.Stdout, "  %s\n", a.Summary)
	}

	for _, u := range result.FailedURLs {
		fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", u, result.ErrorDetails[u])
	}

	fmt.Fprintln(deps.Stdout, result.Message)
	return nil
}
