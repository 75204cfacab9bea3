package main

import (
	"fmt"

	"github.com/fwojciec/pagesum"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	summaries, err := deps.Summaries.FindSummaries(deps.Ctx, pagesum.SummaryFilter{
		SortBy: pagesum.SortByCreatedAt,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries cataloged yet. Run 'pagesum run' first.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%s  %s  (%s)\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.SourceURL, s.Model)
		if c.Full {
			fmt.Fprintln(deps.Stdout, s.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
