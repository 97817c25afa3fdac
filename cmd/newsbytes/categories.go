package main

import (
	"fmt"

	"github.com/FenadoAI/newsbytes"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	for _, category := range newsbytes.Categories {
		fmt.Fprintln(deps.Stdout, category)
	}
	return nil
}
