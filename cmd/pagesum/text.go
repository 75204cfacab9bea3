package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/fs"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", c.Input, err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return pagesum.Errorf(pagesum.EINVALID, "no content found in %q", c.Input)
	}

	text, err := deps.Completer.Complete(deps.Ctx, deps.Template.Render(content))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	output := c.Output
	if output == "" {
		output = strings.TrimSuffix(c.Input, ".txt") + "_summary.md"
	}

	summary := &pagesum.Summary{
		SourceURL: c.Input,
		Content:   text,
		Model:     deps.Completer.Model(),
		CreatedAt: time.Now().UTC(),
	}

	if err := os.WriteFile(output, []byte(fs.FormatSummary(summary)), 0644); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved summary to %s\n", output)
	return nil
}
