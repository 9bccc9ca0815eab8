package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/config"
	"github.com/klatt42/serpmaster/internal/export"
	"github.com/klatt42/serpmaster/internal/model"
	"github.com/klatt42/serpmaster/internal/query"
	"github.com/klatt42/serpmaster/internal/report"
)

// NewKeywordsCmd creates the keywords command.
func NewKeywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords <query>",
		Short: "Research keyword opportunities for a query",
		Long: `Keywords asks the backend for keyword opportunities matching a query,
then filters and sorts the list client-side.

Examples:
  # Research keywords and print a table
  serpmaster keywords "coffee grinder"

  # Only easy keywords with at least 1000 monthly searches, best score first
  serpmaster keywords --level easy --min-volume 1000 --sort score --desc "coffee grinder"

  # Export as CSV with the standard keyword header
  serpmaster keywords --csv -o keywords.csv "coffee grinder"

  # Substring search within the results
  serpmaster keywords --search burr "coffee grinder"`,
		Args: cobra.ExactArgs(1),
		RunE: runKeywordsCmd,
	}

	cmd.Flags().StringP("api-url", "u", "",
		"Backend base URL (overrides SERPMASTER_API_URL)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().IntP("limit", "n", 50,
		"Maximum number of keywords to request")

	// Client-side filter and sort flags
	cmd.Flags().String("level", query.FilterAll,
		"Filter by competition level (easy, moderate, hard, or ALL)")
	cmd.Flags().Int("min-volume", 0,
		"Filter out keywords below this monthly search volume")
	cmd.Flags().String("search", "",
		"Case-insensitive substring filter over keyword text")
	cmd.Flags().String("sort", string(query.KeywordSortScore),
		"Sort key: score, volume, difficulty, cpc, or keyword")
	cmd.Flags().Bool("desc", false,
		"Sort in descending order")

	// Output flags
	cmd.Flags().Bool("csv", false,
		"Output CSV (Keyword,Score,Volume,Difficulty,CPC,Level)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path")
	cmd.Flags().BoolP("download", "d", false,
		"Write output to the conventional artifact filename (keywords-<query>-<date>)")

	return cmd
}

// runKeywordsCmd executes the keywords command.
func runKeywordsCmd(cmd *cobra.Command, args []string) error {
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

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	filter, sortKey, descending, err := keywordQueryFromFlags(cmd)
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

	keywords, err := client.ResearchKeywords(ctx, args[0], limit)
	if err != nil {
		return fmt.Errorf("keyword research %q: %w", args[0], err)
	}

	keywords = query.SortKeywords(query.FilterKeywords(keywords, filter), sortKey, descending)

	return outputKeywords(cfg, args[0], keywords)
}

// keywordQueryFromFlags reads the client-side filter and sort flags.
func keywordQueryFromFlags(cmd *cobra.Command) (query.KeywordFilter, query.KeywordSortKey, bool, error) {
	var filter query.KeywordFilter

	level, err := cmd.Flags().GetString("level")
	if err != nil {
		return filter, "", false, err
	}
	filter.Level = level

	filter.MinVolume, err = cmd.Flags().GetInt("min-volume")
	if err != nil {
		return filter, "", false, err
	}

	filter.Search, err = cmd.Flags().GetString("search")
	if err != nil {
		return filter, "", false, err
	}

	sortKey, err := cmd.Flags().GetString("sort")
	if err != nil {
		return filter, "", false, err
	}

	descending, err := cmd.Flags().GetBool("desc")
	if err != nil {
		return filter, "", false, err
	}

	return filter, query.KeywordSortKey(sortKey), descending, nil
}

// outputKeywords writes the keyword list as CSV or a terminal table.
func outputKeywords(cfg *config.Config, queryText string, keywords []model.Keyword) error {
	ext := ".csv"
	if !cfg.CSVReport {
		ext = ".txt"
	}
	artifact := export.KeywordsFilename(queryText, time.Now(), ext)

	output, closeFn, err := openReportOutput(cfg, artifact)
	if err != nil {
		return err
	}
	defer closeFn()

	if cfg.CSVReport {
		return report.WriteKeywords(output, keywords)
	}

	if len(keywords) == 0 {
		fmt.Fprintln(output, "No keywords matched.")
		return nil
	}

	tw := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEYWORD\tSCORE\tVOLUME\tDIFFICULTY\tCPC\tLEVEL")
	for _, kw := range keywords {
		fmt.Fprintf(tw, "%s\t%.1f\t%d\t%d\t$%.2f\t%s\n",
			kw.Keyword, kw.Score, kw.Volume, kw.Difficulty, kw.CPC, strings.ToLower(kw.Level))
	}
	return tw.Flush()
}
