package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/batch"
	"github.com/fwojciec/pagesum/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Summaries pagesum.SummaryService
	Completer pagesum.Completer
	Template  pagesum.Template
	Writer    pagesum.SummaryWriter
	Runner    *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run  RunCmd  `cmd:"" help:"Summarize every URL in a list file"`
	Text TextCmd `cmd:"" help:"Summarize a single local text file"`
	List ListCmd `cmd:"" help:"List cataloged summaries"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Input     string  `short:"i" default:"urls.txt" help:"URL list file, one URL per line"`
	Output    string  `short:"o" default:"summaries" help:"Output directory for markdown files"`
	Sitemap   string  `help:"Read URLs from a sitemap URL instead of the list file"`
	Provider  string  `default:"gemini" enum:"gemini,openai" help:"Completion backend"`
	Model     string  `short:"m" help:"Override the backend's default model"`
	Extractor string  `default:"trafilatura" enum:"trafilatura,readability,paragraph" help:"Content extraction strategy"`
	Template  string  `short:"t" help:"Prompt template file overriding the built-in template"`
	FailFast  bool    `help:"Abort the batch on the first per-URL failure"`
	RPS       float64 `default:"1" help:"Max requests per second per domain"`
	NoCatalog bool    `help:"Skip recording summaries in the catalog database"`
	Verbose   bool    `short:"v" help:"Log fetch and completion operations"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Input    string `arg:"" default:"input.txt" help:"Text file to summarize"`
	Output   string `short:"o" help:"Output file (defaults to <input>_summary.md)"`
	Provider string `default:"gemini" enum:"gemini,openai" help:"Completion backend"`
	Model    string `short:"m" help:"Override the backend's default model"`
	Template string `short:"t" help:"Prompt template file overriding the built-in template"`
	Verbose  bool   `short:"v" help:"Log completion operations"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Full bool `help:"Show full summary content"`
}
