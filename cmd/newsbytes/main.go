package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/FenadoAI/newsbytes"
	"github.com/FenadoAI/newsbytes/gemini"
	"github.com/FenadoAI/newsbytes/goquery"
	nbhttp "github.com/FenadoAI/newsbytes/http"
	"github.com/FenadoAI/newsbytes/openai"
	"github.com/FenadoAI/newsbytes/scrape"
	nbslog "github.com/FenadoAI/newsbytes/slog"
	"github.com/FenadoAI/newsbytes/sqlite"
	"github.com/FenadoAI/newsbytes/summarize"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the article service.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ArticleService newsbytes.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load API keys from a local .env file when present.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsbytes"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsbytes --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ = strings.Cut(kongCtx.Command(), " ")

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSBYTES_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	// Wire the scraping pipeline only when the command needs it.
	if cmd == "scrape" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))

		generator, err := newGenerator(ctx, cli.Scrape, stderr)
		if err != nil {
			return err
		}
		if generator != nil {
			generator = nbslog.NewLoggingGenerator(generator, logger)
		}

		fetcher := nbslog.NewLoggingFetcher(nbhttp.NewFetcher(nbhttp.WithLogger(logger)), logger)
		defer fetcher.Close()

		summarizer := summarize.NewSummarizer(generator,
			summarize.WithConfig(newsbytes.SummarizerConfig{AIEnabled: cli.Scrape.AI}),
			summarize.WithLogger(logger),
		)

		deps.Pipeline = &scrape.Pipeline{
			Assembler: &scrape.Assembler{
				Fetcher:   fetcher,
				Extractor: goquery.NewExtractor(),
				Logger:    logger,
			},
			Summarizer:  summarizer,
			Articles:    m.ArticleService,
			RateLimiter: scrape.NewDomainLimiter(1.0),
			Concurrency: cli.Scrape.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// newGenerator builds the AI generator for the selected provider, or nil
// when AI summarization is disabled.
func newGenerator(ctx context.Context, c ScrapeCmd, stderr io.Writer) (newsbytes.Generator, error) {
	if !c.AI {
		return nil, nil
	}

	switch c.Provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return openai.NewGenerator(openai.Config{APIKey: apiKey}), nil
	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSBYTES_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsbytes.db"
	}
	dir := filepath.Join(home, ".newsbytes")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsbytes.db")
}
