package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/pager"
	"github.com/BrandonKowalski/swipeview/pkg/swipeview/simulate"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <script>",
		Short: "Replay a gesture script without a window",
		Long: `Replay a TOML or YAML gesture script through the pager on a simulated
clock and print the published position of every frame.

Spring and threshold settings come from the config file, so a script can be
replayed against different tunings.`,
		Example: `  swipeview simulate fling.yaml
  swipeview simulate fling.yaml --config soft-spring.toml --commits-only
  swipeview simulate fling.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			script, err := simulate.LoadScript(args[0])
			if err != nil {
				return err
			}

			level := "warn"
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = "debug"
			}
			logger := swipeview.NewLogger(level, cmd.ErrOrStderr())

			// Run supplies navigation and layout from the script.
			opts := cfg.PagerOptions(pager.NavigationState{})
			res, err := simulate.Run(script, opts, logger)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			commitsOnly, _ := cmd.Flags().GetBool("commits-only")
			printResult(cmd, res, commitsOnly)
			if res.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: stopped after %v before the pager came to rest\n", res.Frames[len(res.Frames)-1].Time)
			}
			return nil
		},
	}

	cmd.Flags().Bool("commits-only", false, "Print only frames that committed a page")
	cmd.Flags().BoolP("verbose", "v", false, "Log owner index changes")

	return cmd
}

func printResult(cmd *cobra.Command, res *simulate.Result, commitsOnly bool) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSTATE\tPOSITION\tTRANSLATE\tINDEX\tEVENTS")
	for _, f := range res.Frames {
		if commitsOnly && f.Commit == nil {
			continue
		}
		events := strings.Join(f.Events, ", ")
		if f.Commit != nil {
			events = strings.TrimPrefix(events+", commit "+f.Commit.Key+" ("+f.Commit.Reason.String()+")", ", ")
		}
		fmt.Fprintf(w, "%v\t%s\t%.3f\t%.1f\t%d\t%s\n", f.Time, f.State, f.Position, f.Translate, f.Index, events)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nfinal: %s (index %d), %d commit(s), %d frame(s)\n",
		res.FinalKey, res.FinalIndex, len(res.Commits), len(res.Frames))
}
