// Package cli implements the docket command-line front-end: flag parsing,
// query construction, and result rendering with process exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/docketwatch/docket/internal/config"
	"github.com/docketwatch/docket/internal/courtlistener"
	"github.com/docketwatch/docket/internal/render"
)

// Run executes one CLI invocation and returns the process exit code.
// Exit code 0 covers success including zero results; any validation,
// configuration, network, or decode failure returns 1.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		court      string
		limit      int
		startDate  string
		endDate    string
		exportPath string
		verbose    bool
		listCourts bool
		recent     bool
		configPath string
	)

	flagSet := pflag.NewFlagSet("docket", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&court, "court", "", "filter by court slug (e.g. scotus, ca9)")
	flagSet.IntVar(&limit, "limit", 0, "max number of results to return (default 10)")
	flagSet.StringVar(&startDate, "start-date", "", "earliest filing date (YYYY-MM-DD)")
	flagSet.StringVar(&endDate, "end-date", "", "latest filing date (YYYY-MM-DD)")
	flagSet.StringVar(&exportPath, "export", "", "export results to a CSV file")
	flagSet.BoolVar(&verbose, "verbose", false, "show docket number and citations")
	flagSet.BoolVar(&listCourts, "list-courts", false, "print popular court slugs and exit")
	flagSet.BoolVar(&recent, "recent", false, "fetch opinions filed today")
	flagSet.StringVar(&configPath, "config", "", "override config path (optional)")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, flagSet)
			return 0
		}
		return 1
	}

	if listCourts {
		render.New(stdout, "", false, nil).Courts(courtlistener.PopularCourts())
		return 0
	}

	query := strings.TrimSpace(strings.Join(flagSet.Args(), " "))
	if query == "" && !recent {
		fmt.Fprintln(stderr, "Error: provide a search query, or use --recent or --list-courts")
		return 1
	}
	if flagSet.Changed("limit") && limit <= 0 {
		fmt.Fprintln(stderr, "Error: --limit must be a positive integer")
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.RequireToken(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	client, err := courtlistener.NewClient(cfg.APIBase, cfg.APIToken)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	pageSize := limit
	if pageSize == 0 {
		pageSize = cfg.PageSize
	}
	searchQuery := courtlistener.SearchQuery{
		Text:        query,
		Court:       court,
		FiledAfter:  startDate,
		FiledBefore: endDate,
		PageSize:    pageSize,
	}

	var resp courtlistener.SearchResponse
	if recent {
		resp, err = client.RecentOpinions(ctx, searchQuery)
		if query == "" {
			query = "recent opinions"
		}
	} else {
		resp, err = client.Search(ctx, searchQuery)
	}
	if err != nil {
		fmt.Fprintln(stderr, describeError(err))
		return 1
	}

	resolve := func(ref string) string {
		return client.ResolveCourtName(ctx, ref)
	}
	render.New(stdout, client.SiteURL(), verbose, resolve).Results(query, court, resp.Results)

	if exportPath != "" {
		if err := exportCSV(exportPath, resp.Results, client.SiteURL(), resolve); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Results exported to %s\n", exportPath)
	}

	return 0
}

func exportCSV(path string, results []courtlistener.Opinion, siteBase string, resolve render.CourtResolver) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := render.WriteCSV(file, results, siteBase, resolve); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// describeError maps the client error taxonomy to user-facing messages.
func describeError(err error) string {
	var invalid courtlistener.InvalidQueryError
	if errors.As(err, &invalid) {
		return fmt.Sprintf("Error: %v", invalid)
	}
	var status courtlistener.StatusError
	if errors.As(err, &status) {
		return fmt.Sprintf("HTTP error: the API returned status %d", status.StatusCode)
	}
	var request courtlistener.RequestError
	if errors.As(err, &request) {
		return fmt.Sprintf("Connection error: unable to reach the API (%v)", request.Err)
	}
	var decode courtlistener.DecodeError
	if errors.As(err, &decode) {
		return fmt.Sprintf("Error: unexpected API response: %v", decode.Err)
	}
	return fmt.Sprintf("Error: %v", err)
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, `Usage: docket "<search query>" [flags]`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Search CourtListener for court opinions.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagSet.FlagUsages())
}
