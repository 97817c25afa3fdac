package main

import (
	"context"
	"io"

	"github.com/FenadoAI/newsbytes"
	"github.com/FenadoAI/newsbytes/scrape"
	"github.com/FenadoAI/newsbytes/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Articles newsbytes.ArticleService
	Pipeline *scrape.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Database path (overrides NEWSBYTES_DB)"`

	Scrape     ScrapeCmd     `cmd:"" help:"Scrape, summarize and store news articles"`
	List       ListCmd       `cmd:"" help:"List stored articles"`
	Categories CategoriesCmd `cmd:"" help:"List supported categories"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" help:"Article URLs to scrape"`
	AI          bool     `help:"Summarize with an AI provider instead of the extractive fallback"`
	Provider    string   `enum:"gemini,openai" default:"gemini" help:"AI provider"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent scrape limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"C" help:"Filter by category"`
	Limit    int    `default:"20" help:"Maximum number of articles"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}
