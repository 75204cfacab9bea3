package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/batch"
	"github.com/fwojciec/pagesum/fs"
	"github.com/fwojciec/pagesum/gemini"
	"github.com/fwojciec/pagesum/goquery"
	"github.com/fwojciec/pagesum/htmltomarkdown"
	pagesumhttp "github.com/fwojciec/pagesum/http"
	"github.com/fwojciec/pagesum/openai"
	"github.com/fwojciec/pagesum/readability"
	pagesumslog "github.com/fwojciec/pagesum/slog"
	"github.com/fwojciec/pagesum/sqlite"
	"github.com/fwojciec/pagesum/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog database path. Set before calling Run().
	DBPath string

	// SQLite database backing the summary catalog.
	DB *sqlite.DB

	// Summary catalog for end-to-end testing.
	Summaries pagesum.SummaryService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesum"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesum --help' to see available commands")
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

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Open the catalog database for commands that need it
	if cmd == "list" || (cmd == "run" && !cli.Run.NoCatalog) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGESUM_DB to use a different database path\n")
			return fmt.Errorf("failed to open catalog at %q: %w", m.DBPath, err)
		}
		m.Summaries = sqlite.NewSummaryService(m.DB)
		deps.DB = m.DB
		deps.Summaries = m.Summaries
	}

	if cmd == "run" {
		completer, err := buildCompleter(ctx, cli.Run.Provider, cli.Run.Model, stderr)
		if err != nil {
			return err
		}

		tmpl, err := loadTemplate(cli.Run.Template)
		if err != nil {
			return err
		}

		var source pagesum.URLSource
		if cli.Run.Sitemap != "" {
			source = pagesumhttp.NewSitemapSource(nil, cli.Run.Sitemap)
		} else {
			source = fs.NewListSource(cli.Run.Input)
		}

		var fetcher pagesum.Fetcher = pagesumhttp.NewFetcher()
		if cli.Run.Verbose {
			fetcher = pagesumslog.NewLoggingFetcher(fetcher, logger)
			completer = pagesumslog.NewLoggingCompleter(completer, logger)
		}

		policy := batch.ContinueOnError
		if cli.Run.FailFast {
			policy = batch.FailFast
		}

		var limiter pagesum.DomainLimiter
		if cli.Run.RPS > 0 {
			limiter = batch.NewDomainLimiter(cli.Run.RPS)
		}

		deps.Runner = &batch.Runner{
			Source:    source,
			Fetcher:   fetcher,
			Extractor: buildExtractor(cli.Run.Extractor),
			Converter: htmltomarkdown.NewConverter(),
			Completer: completer,
			Writer:    fs.NewWriter(cli.Run.Output),
			Template:  tmpl,
			Catalog:   deps.Summaries,
			Limiter:   limiter,
			Policy:    policy,
		}
	}

	if cmd == "text" {
		completer, err := buildCompleter(ctx, cli.Text.Provider, cli.Text.Model, stderr)
		if err != nil {
			return err
		}
		if cli.Text.Verbose {
			completer = pagesumslog.NewLoggingCompleter(completer, logger)
		}

		tmpl, err := loadTemplate(cli.Text.Template)
		if err != nil {
			return err
		}

		deps.Completer = completer
		deps.Template = tmpl
	}

	return kongCtx.Run(deps)
}

// buildCompleter constructs the completion backend for the given provider.
// API credentials are read from the environment once, here, and passed into
// the constructors; nothing else reads the environment.
func buildCompleter(ctx context.Context, provider, model string, stderr io.Writer) (pagesum.Completer, error) {
	switch provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return openai.NewCompleter(apiKey, openai.WithModel(model)), nil
	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, gemini.WithModel(model)), nil
	}
}

// buildExtractor selects the content extraction strategy.
func buildExtractor(name string) pagesum.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "paragraph":
		return goquery.NewExtractor()
	default:
		return trafilatura.NewExtractor()
	}
}

// loadTemplate reads a prompt template file, falling back to the built-in
// template when no path is given.
func loadTemplate(path string) (pagesum.Template, error) {
	if path == "" {
		return pagesum.Template(pagesum.DefaultTemplate), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %q: %w", path, err)
	}
	return pagesum.Template(data), nil
}

func defaultDBPath() string {
	if path := os.Getenv("PAGESUM_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesum.db"
	}
	dir := filepath.Join(home, ".pagesum")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagesum.db")
}
