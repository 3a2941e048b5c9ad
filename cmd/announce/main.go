package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Rag3karn/HOF-Scheduler/internal/schedule"
	"github.com/Rag3karn/HOF-Scheduler/internal/util"
)

// errInvalid is returned once the schedule's own errors are on stderr.
var errInvalid = errors.New("schedule has errors")

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs cmd and returns the process exit status.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		all bool
		out string
	)
	cmd := &cobra.Command{
		Use:           "announce FILE.xlsx",
		Short:         "Validate a match schedule and print the weekly announcement",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if !cmd.Flags().Changed("all") {
				all = util.NormalizeBool(os.Getenv("COLLECT_ALL_ERRORS"))
			}

			res := schedule.Processor{CollectAll: all}.ProcessFile(args[0])
			if !res.OK() {
				for _, e := range res.Errors {
					fmt.Fprintln(cmd.ErrOrStderr(), e)
				}
				return errInvalid
			}

			if out != "" {
				return os.WriteFile(out, []byte(res.Announcement), 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Announcement)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "report the first problem of every bad row instead of stopping at the first one")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the announcement to this file instead of stdout")
	return cmd
}
