package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"DocTrackerGo/services"
)

var (
	statsUser    string
	statsRange   string
	statsCompare bool
	statsTop     bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a user's productivity report as JSON",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsUser, "user", "", "User id to report on")
	statsCmd.Flags().StringVar(&statsRange, "range", services.DefaultRange, "Time range: 24h, 1w, 1m")
	statsCmd.Flags().BoolVar(&statsCompare, "compare", false, "Report every range side by side")
	statsCmd.Flags().BoolVar(&statsTop, "top", false, "Report only the top platforms, doc types and queues")
	_ = statsCmd.MarkFlagRequired("user")
}

func runStats(cmd *cobra.Command, args []string) error {
	a, closeApp, err := openApp(false)
	if err != nil {
		return err
	}
	defer closeApp()

	svc := services.NewProductivityService(services.NewEntryService(a.entries))
	return writeStats(cmd, svc, cmd.OutOrStdout(), time.Now())
}

func writeStats(cmd *cobra.Command, svc *services.ProductivityService, out io.Writer, now time.Time) error {
	ctx := cmd.Context()

	var report interface{}
	var err error
	switch {
	case statsCompare && statsTop:
		return fmt.Errorf("--compare and --top cannot be combined")
	case statsCompare:
		report, err = svc.Comparison(ctx, statsUser, now)
	case statsTop:
		report, err = svc.TopMetrics(ctx, statsUser, statsRange, now)
	default:
		report, err = svc.Stats(ctx, statsUser, statsRange, now)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
