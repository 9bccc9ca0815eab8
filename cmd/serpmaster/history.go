package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/config"
	"github.com/klatt42/serpmaster/internal/database"
	"github.com/klatt42/serpmaster/internal/report"
)

// NewHistoryCmd creates the history command.
// This command works entirely against the local history database; it never
// contacts the backend.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [url]",
		Short: "Show stored audits and diff the latest two",
		Long: `History reads the local audit database and shows how a site has changed.

By default it diffs the latest two stored audits of the site: the score
delta, issues that were resolved, and issues that appeared. The database
is populated by 'serpmaster audit' (unless --no-save was used).

Examples:
  # Diff the latest two audits of a site
  serpmaster history https://example.com

  # List all stored audits for a site
  serpmaster history --list https://example.com

  # List every site with stored audits
  serpmaster history --list-sites

  # Re-render a stored audit as Markdown by its ID
  serpmaster history --show-id 5 --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("list", "l", false,
		"List stored audits for the specified site")
	cmd.Flags().BoolP("list-sites", "L", false,
		"List all sites with stored audits")
	cmd.Flags().Int64P("show-id", "i", 0,
		"Render a stored audit by ID (use --list to see available IDs)")

	cmd.Flags().BoolP("json", "j", false,
		"Output in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output in Markdown format (with --show-id)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	listSites, err := cmd.Flags().GetBool("list-sites")
	if err != nil {
		return err
	}

	showID, err := cmd.Flags().GetInt64("show-id")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database.
	site, err := historySite(args, listSites, showID)
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if listSites {
		return listStoredSites(ctx, db)
	}

	if showID > 0 {
		return showStoredAudit(ctx, cmd, db, showID)
	}

	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if list {
		return listAuditHistory(ctx, db, site)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	return diffLatestAudits(ctx, db, site, jsonOutput)
}

// historySite resolves the site argument. Listing sites and rendering a
// stored audit by row ID work without one; every other mode needs it.
func historySite(args []string, listSites bool, showID int64) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if listSites || showID > 0 {
		return "", nil
	}
	return "", errors.New("site URL is required (use --list-sites to see stored sites)")
}

// listStoredSites prints every site with stored audits.
func listStoredSites(ctx context.Context, db *database.HistoryDB) error {
	sites, err := db.ListSites(ctx)
	if err != nil {
		return err
	}
	if len(sites) == 0 {
		fmt.Println("No audits stored yet. Run 'serpmaster audit <url>' first.")
		return nil
	}
	for _, site := range sites {
		fmt.Println(site)
	}
	return nil
}

// listAuditHistory prints the stored audit summaries for a site.
func listAuditHistory(ctx context.Context, db *database.HistoryDB, site string) error {
	records, err := db.AuditHistory(ctx, site)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No audits stored for %s.\n", site)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tSCORE\tGRADE\tCRITICAL\tWARNINGS\tINFO\tQUICK WINS")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%.1f (%.1f%%)\t%s\t%d\t%d\t%d\t%d\n",
			rec.ID,
			rec.Timestamp.Format("2006-01-02 15:04"),
			rec.TotalScore,
			rec.Percentage,
			rec.Grade,
			rec.CriticalCount,
			rec.WarningCount,
			rec.InfoCount,
			rec.QuickWinCount,
		)
	}
	return tw.Flush()
}

// showStoredAudit re-renders a stored audit by ID.
func showStoredAudit(ctx context.Context, cmd *cobra.Command, db *database.HistoryDB, id int64) error {
	result, err := db.GetAuditByID(ctx, id)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("no stored audit with ID %d", id)
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	var writer report.Writer
	switch {
	case jsonOutput:
		writer = report.NewJSONWriter(os.Stdout, report.WithPrettyPrint())
	case markdown:
		writer = report.NewMarkdownWriter(os.Stdout)
	default:
		writer = report.NewTextWriter(os.Stdout, report.WithVerbose(true))
	}

	_, err = writer.WriteAudit(result)
	return err
}

// diffLatestAudits diffs the latest two stored audits of a site.
func diffLatestAudits(ctx context.Context, db *database.HistoryDB, site string, jsonOutput bool) error {
	results, err := db.LatestAudits(ctx, site, 2)
	if err != nil {
		return err
	}
	if len(results) < 2 {
		return fmt.Errorf("need at least two stored audits of %s to diff (have %d)", site, len(results))
	}

	// LatestAudits returns newest first; the diff wants oldest first.
	diff := database.DiffAudits(results[1], results[0])

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(diff)
	}

	printAuditDiff(diff)
	return nil
}

// printAuditDiff writes a human-readable audit diff to stdout.
func printAuditDiff(diff database.AuditDiff) {
	direction := "unchanged"
	if diff.ScoreDelta > 0 {
		direction = "improved"
	} else if diff.ScoreDelta < 0 {
		direction = "worsened"
	}

	fmt.Printf("Site: %s\n", diff.Site)
	fmt.Printf("Audits: %s -> %s\n",
		diff.Before.Timestamp.Format("2006-01-02 15:04"),
		diff.After.Timestamp.Format("2006-01-02 15:04"),
	)
	fmt.Printf("Score: %.1f -> %.1f (%+.1f, %s)\n",
		diff.Before.Score.TotalScore,
		diff.After.Score.TotalScore,
		diff.ScoreDelta,
		direction,
	)

	if len(diff.Resolved) > 0 {
		fmt.Printf("\nResolved issues (%d):\n", len(diff.Resolved))
		for _, issue := range diff.Resolved {
			fmt.Printf("  - %s [%s]\n", issue.Title, issue.Severity)
		}
	}

	if len(diff.Introduced) > 0 {
		fmt.Printf("\nNew issues (%d):\n", len(diff.Introduced))
		for _, issue := range diff.Introduced {
			fmt.Printf("  + %s [%s]\n", issue.Title, issue.Severity)
		}
	}

	if len(diff.Resolved) == 0 && len(diff.Introduced) == 0 {
		fmt.Println("\nNo issues changed between the two audits.")
	}
}
