package main

import (
	"fmt"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/batch"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	defer deps.Runner.Fetcher.Close()

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d URLs\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s -> %s\n", event.Completed, event.Total, event.URL, event.Path)
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] skip %s: no content extracted\n", event.Completed, event.Total, event.URL)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %v\n", event.Completed, event.Total, event.URL, event.Error)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d summaries (%d skipped, %d failed)\n",
		result.Saved, result.Skipped, result.Failed)

	return nil
}
