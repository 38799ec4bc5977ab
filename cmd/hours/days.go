package main

import (
	"fmt"

	"github.com/ceramic-mug/hours"
)

// Run executes the days command.
func (c *DaysCmd) Run(deps *Dependencies) error {
	completions, err := deps.Completions.FindCompletions(deps.Ctx, hours.CompletionFilter{
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hours.ErrorMessage(err))
		return err
	}

	if len(completions) == 0 {
		fmt.Fprintln(deps.Stdout, "No completed offices yet. Use 'hours show' to read one.")
		return nil
	}

	for _, completion := range completions {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", completion.Day, completion.Hour)
	}

	return nil
}
