package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "herringctl",
		Short: "Inspect puzzle activity and manage the herring database",
		Long: `herringctl is a companion to the herring API server.

It decodes activity histograms the way the puzzle list does, formats
elapsed times, and creates the database schema.

Examples:
  herringctl bucketize 000000000000007 --last-active 1763143200000
  herringctl track 1763143080000 1763143200000
  herringctl delta 90s
  herringctl migrate --config config.yaml`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newBucketizeCmd(time.Now),
		newTrackCmd(),
		newDeltaCmd(),
		newMigrateCmd(),
	)

	return root
}
