package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/errors"
	"github.com/crakton/cashworxs-admin-sub000/internal/export"
	"github.com/crakton/cashworxs-admin-sub000/internal/listkit"
)

const dateFlagLayout = "2006-01-02"

// listFlags are the shared filter and pagination flags every list command
// accepts.
func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "search", Usage: "substring match on the text columns"},
		&cli.IntFlag{Name: "status", Value: -1, Usage: "numeric status filter, -1 for all"},
		&cli.StringFlag{Name: "from", Usage: "start date (YYYY-MM-DD)"},
		&cli.StringFlag{Name: "to", Usage: "end date (YYYY-MM-DD), inclusive"},
		&cli.IntFlag{Name: "page", Value: 0, Usage: "zero-based page"},
		&cli.IntFlag{Name: "page-size", Value: 10, Usage: "rows per page"},
		&cli.StringFlag{Name: "csv", Usage: "write the filtered rows to this CSV file instead of printing"},
	}
}

// controlsFromFlags wires the flag values into list controls.
func controlsFromFlags[T any](c *cli.Context, textFields []func(T) string, statusOf func(T) int, createdAt func(T) time.Time) (*listkit.Controls[T], error) {
	ctl := listkit.NewControls(c.Int("page-size"), textFields, statusOf, createdAt)
	ctl.SetSearch(c.String("search"))

	if s := c.Int("status"); s >= 0 {
		ctl.SetStatus(&s)
	}

	var from, to time.Time
	if v := c.String("from"); v != "" {
		t, err := time.Parse(dateFlagLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid --from date %q, want YYYY-MM-DD", v)
		}
		from = t
	}
	if v := c.String("to"); v != "" {
		t, err := time.Parse(dateFlagLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date %q, want YYYY-MM-DD", v)
		}
		to = t
	}
	if !from.IsZero() || !to.IsZero() {
		ctl.SetDateRange(from, to)
	}

	// Page is applied last: filter changes reset it, the explicit flag wins.
	ctl.SetPage(c.Int("page"))
	return ctl, nil
}

// renderList prints the current page as a table, or exports the full
// filtered set when --csv is given. Relative export paths land in the
// configured export directory.
func renderList[T any](c *cli.Context, ctl *listkit.Controls[T], items []T, columns []export.Column[T], exportDir string) error {
	if path := c.String("csv"); path != "" {
		filtered := ctl.Filtered(items)
		if !filepath.IsAbs(path) {
			path = filepath.Join(exportDir, path)
		}
		written, err := export.WriteFile(filepath.Dir(path), filepath.Base(path), columns, filtered)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Wrote %d rows to %s\n", len(filtered), written)
		return nil
	}

	page, total := ctl.Apply(items)
	if total == 0 {
		fmt.Fprintln(c.App.Writer, "No records found.")
		return nil
	}

	w := tabwriter.NewWriter(c.App.Writer, 2, 4, 2, ' ', 0)
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	row := make([]string, len(columns))
	for _, item := range page {
		for i, col := range columns {
			row[i] = col.Value(item)
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	fmt.Fprintf(c.App.Writer, "\nPage %d of %d (%d records)\n",
		ctl.Page()+1, listkit.PageCount(total, ctl.PerPage()), total)
	return nil
}

// confirm prompts before destructive operations. --yes skips the prompt.
func confirm(c *cli.Context, what string) bool {
	if c.Bool("yes") {
		return true
	}
	fmt.Fprintf(c.App.Writer, "Delete %s? [y/N] ", what)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// renderError maps any failure onto its operator-facing message.
func renderError(err error) string {
	std := errors.Convert(err)
	if std.Message != "" {
		if std.Details != "" {
			return fmt.Sprintf("Error: %s (%s)", std.Message, std.Details)
		}
		return "Error: " + std.Message
	}
	return "Error: " + errors.GenericMessage
}
