package main

import (
	"fmt"
	"strconv"
	"time"

	"herring/internal/activity/core/domain"

	"github.com/spf13/cobra"
)

func newDeltaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delta <ms|duration>",
		Short: "Format an elapsed time the way the puzzle list does",
		Long: `Format an elapsed time given in milliseconds or as a Go duration.

Examples:
  herringctl delta 45000
  herringctl delta 3h12m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseElapsed(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.FormatDelta(ms))
			return nil
		},
	}
}

func parseElapsed(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("elapsed time must not be negative: %d", ms)
		}
		return ms, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid elapsed time %q", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("elapsed time must not be negative: %s", d)
	}
	return d.Milliseconds(), nil
}
