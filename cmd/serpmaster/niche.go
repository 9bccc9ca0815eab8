package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/config"
	"github.com/klatt42/serpmaster/internal/export"
	"github.com/klatt42/serpmaster/internal/model"
	"github.com/klatt42/serpmaster/internal/query"
	"github.com/klatt42/serpmaster/internal/report"
)

// NewNicheCmd creates the niche command.
func NewNicheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "niche <seed>",
		Short: "Analyze a niche's keyword landscape",
		Long: `Niche asks the backend to analyze the keyword landscape around a seed
topic and reports an overall niche score plus the discovered keyword
opportunities.

Examples:
  # Analyze a niche
  serpmaster niche "home espresso"

  # Export the discovered keywords as CSV, best volume first
  serpmaster niche --csv --sort volume --desc -o niche.csv "home espresso"`,
		Args: cobra.ExactArgs(1),
		RunE: runNicheCmd,
	}

	cmd.Flags().StringP("api-url", "u", "",
		"Backend base URL (overrides SERPMASTER_API_URL)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")

	cmd.Flags().String("sort", string(query.KeywordSortScore),
		"Sort key for the keyword list: score, volume, difficulty, cpc, or keyword")
	cmd.Flags().Bool("desc", false,
		"Sort in descending order")

	cmd.Flags().Bool("csv", false,
		"Output keywords as CSV (Keyword,Score,Volume,Difficulty,CPC,Level)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path")
	cmd.Flags().BoolP("download", "d", false,
		"Write output to the conventional artifact filename")

	return cmd
}

// runNicheCmd executes the niche command.
func runNicheCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	cfg.Targets = args
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" { //nolint:errcheck // flag is declared above
		cfg.APIBaseURL = apiURL
	}
	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}
	cfg.CSVReport, err = cmd.Flags().GetBool("csv")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	cfg.Download, err = cmd.Flags().GetBool("download")
	if err != nil {
		return err
	}

	sortKey, err := cmd.Flags().GetString("sort")
	if err != nil {
		return err
	}
	descending, err := cmd.Flags().GetBool("desc")
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)

	ctx, cancel := signalContext()
	defer cancel()

	client, err := newAPIClient(cfg, "", logger)
	if err != nil {
		return err
	}

	analysis, err := client.AnalyzeNiche(ctx, args[0])
	if err != nil {
		return fmt.Errorf("niche analysis %q: %w", args[0], err)
	}

	analysis.Keywords = query.SortKeywords(analysis.Keywords, query.KeywordSortKey(sortKey), descending)

	return outputNiche(cfg, analysis)
}

// outputNiche writes the niche analysis as CSV or a terminal summary.
func outputNiche(cfg *config.Config, analysis *model.NicheAnalysis) error {
	ext := ".csv"
	if !cfg.CSVReport {
		ext = ".txt"
	}
	when := analysis.Timestamp
	if when.IsZero() {
		when = time.Now()
	}
	artifact := export.KeywordsFilename(analysis.Seed, when, ext)

	output, closeFn, err := openReportOutput(cfg, artifact)
	if err != nil {
		return err
	}
	defer closeFn()

	if cfg.CSVReport {
		return report.WriteKeywords(output, analysis.Keywords)
	}

	fmt.Fprintf(output, "Niche: %s\n", analysis.Seed)
	fmt.Fprintf(output, "Niche score: %.1f / 100\n", analysis.NicheScore)
	if analysis.Summary != "" {
		fmt.Fprintf(output, "\n%s\n", analysis.Summary)
	}
	fmt.Fprintf(output, "\nTop opportunities (%d):\n", len(analysis.Keywords))
	for _, kw := range analysis.Keywords {
		fmt.Fprintf(output, "  %-36s score %5.1f  vol %-7d diff %-4d $%.2f\n",
			kw.Keyword, kw.Score, kw.Volume, kw.Difficulty, kw.CPC)
	}

	return nil
}
