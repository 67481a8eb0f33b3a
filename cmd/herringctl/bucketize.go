package main

import (
	"fmt"
	"strings"
	"time"

	"herring/internal/activity/core/domain"

	"github.com/spf13/cobra"
)

func newBucketizeCmd(clock func() time.Time) *cobra.Command {
	var lastActive, now int64

	cmd := &cobra.Command{
		Use:   "bucketize <histogram>",
		Short: "Decode an activity histogram into sparkline buckets",
		Long: `Decode a hex activity histogram into per-bucket activity counts,
oldest first, aligned to the current time.

Prints "no chart" when the last activity is too old to draw.

Examples:
  herringctl bucketize 000000000000007 --last-active 1763143200000
  herringctl bucketize fffffffffffffff --last-active 1763143200000 --now 1763143560000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if now == 0 {
				now = clock().UnixMilli()
			}

			buckets, err := domain.Bucketize(args[0], lastActive, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if buckets == nil {
				fmt.Fprintln(out, "no chart")
				return nil
			}

			fmt.Fprintln(out, strings.Trim(fmt.Sprint(buckets), "[]"))
			fmt.Fprintln(out, spark(buckets))
			return nil
		},
	}

	cmd.Flags().Int64Var(&lastActive, "last-active", 0, "time of the last activity, unix ms")
	cmd.Flags().Int64Var(&now, "now", 0, "reference time, unix ms (default: current time)")
	_ = cmd.MarkFlagRequired("last-active")

	return cmd
}

// spark scales each bucket against a full one, not against the busiest.
func spark(buckets []int) string {
	blocks := []rune("▁▂▃▄▅▆▇█")

	out := make([]rune, 0, len(buckets))
	for _, c := range buckets {
		level := c * (len(blocks) - 1) / domain.BucketSize
		if level < 0 {
			level = 0
		}
		if level >= len(blocks) {
			level = len(blocks) - 1
		}
		out = append(out, blocks[level])
	}
	return string(out)
}
