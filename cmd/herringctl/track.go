package main

import (
	"fmt"
	"strconv"

	"herring/internal/activity/core/domain"

	"github.com/spf13/cobra"
)

func newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <unix-ms>...",
		Short: "Build an activity histogram from message timestamps",
		Long: `Feed message timestamps, in any order, through the activity tracker and
print the resulting histogram and last activity time.

Examples:
  herringctl track 1763143080000 1763143200000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t domain.Tracker
			for _, a := range args {
				at, err := strconv.ParseInt(a, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid timestamp %q: %w", a, err)
				}
				t.Record(at)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "activity_histo %s\n", t.Histogram())
			fmt.Fprintf(out, "last_active    %d\n", t.LastActive)
			return nil
		},
	}
}
