package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/artgrid/internal/domain"
	"github.com/mmcdole/artgrid/internal/paging"
	"github.com/mmcdole/artgrid/internal/service"
	"github.com/mmcdole/artgrid/internal/tui/components"
	"github.com/mmcdole/artgrid/internal/tui/styles"
)

const (
	defaultDumpWidth = 120
	dumpDateWidth    = 10
	dumpGap          = "  "
)

// dump column shares after the date columns, same order as ColumnTitles
var dumpShares = []int{30, 15, 30, 25}

var (
	pageLimit int
	pageJSON  bool
)

// pageCmd prints a single page without the interactive grid
var pageCmd = &cobra.Command{
	Use:   "page [N]",
	Short: "Print one page of artworks",
	Long: `Fetch a single page of the collection and print it as an aligned
table, or as JSON with --json. Pages are numbered from 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPage,
}

func init() {
	pageCmd.Flags().IntVarP(&pageLimit, "limit", "l", 0, "rows per page (defaults to paging.page_size)")
	pageCmd.Flags().BoolVar(&pageJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	number := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("page must be a number, got %q", args[0])
		}
		number = n
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer := setupLogger(cfg)
	defer closer.Close()

	size := cfg.Paging.PageSize
	if pageLimit != 0 {
		size = pageLimit
	}

	catalog := service.NewCatalogService(newClient(cfg, logger), logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), catalog.Timeout())
	defer cancel()

	page, err := catalog.FetchPage(ctx, paging.NewCursor(number, size))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pageJSON {
		return writePageJSON(out, page)
	}
	return writePageTable(out, page, outputWidth())
}

func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultDumpWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultDumpWidth
	}
	return w
}

type pageJSONOutput struct {
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Items      []artworkJSONRow `json:"items"`
}

type artworkJSONRow struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PlaceOfOrigin string `json:"place_of_origin,omitempty"`
	ArtistDisplay string `json:"artist_display,omitempty"`
	Inscriptions  string `json:"inscriptions,omitempty"`
	DateStart     *int   `json:"date_start,omitempty"`
	DateEnd       *int   `json:"date_end,omitempty"`
}

// writePageJSON prints page as indented JSON. Absent dates are omitted.
func writePageJSON(w io.Writer, page domain.Page) error {
	out := pageJSONOutput{
		Page:       page.Number,
		Limit:      page.Size,
		Total:      page.Total,
		TotalPages: paging.NewCursor(page.Number, page.Size).TotalPages(page.Total),
		Items:      make([]artworkJSONRow, 0, len(page.Items)),
	}
	for _, a := range page.Items {
		a := a
		row := artworkJSONRow{
			ID:            a.ID,
			Title:         a.Title,
			PlaceOfOrigin: a.PlaceOfOrigin,
			ArtistDisplay: a.ArtistDisplay,
			Inscriptions:  a.Inscriptions,
		}
		if a.HasDateStart() {
			row.DateStart = &a.DateStart
		}
		if a.HasDateEnd() {
			row.DateEnd = &a.DateEnd
		}
		out.Items = append(out.Items, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writePageTable prints page as fixed-width columns fitted to width
func writePageTable(w io.Writer, page domain.Page, width int) error {
	widths := dumpWidths(width)

	var b strings.Builder
	b.WriteString(dumpLine(" ", components.ColumnTitles, widths))
	for _, a := range page.Items {
		b.WriteString(dumpLine(components.CheckCell(false), components.FormatRow(a), widths))
	}

	cur := paging.NewCursor(page.Number, page.Size)
	if len(page.Items) == 0 {
		fmt.Fprintf(&b, "\npage %d: no rows (total %d)\n", page.Number, page.Total)
	} else {
		fmt.Fprintf(&b, "\npage %d of %d, rows %d-%d of %d\n",
			page.Number, cur.TotalPages(page.Total),
			cur.Offset()+1, cur.Offset()+len(page.Items), page.Total)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// dumpWidths sizes the six data columns for a line of width
func dumpWidths(width int) []int {
	cols := len(components.ColumnTitles)
	fixed := 1 + 2*dumpDateWidth + cols*len(dumpGap)
	flex := max(width-fixed, 8*len(dumpShares))

	widths := make([]int, 0, cols)
	for _, share := range dumpShares {
		widths = append(widths, flex*share/100)
	}
	return append(widths, dumpDateWidth, dumpDateWidth)
}

func dumpLine(check string, cells []string, widths []int) string {
	parts := make([]string, 0, len(cells)+1)
	parts = append(parts, check)
	for i, cell := range cells {
		parts = append(parts, styles.Pad(styles.Truncate(cell, widths[i]), widths[i]))
	}
	return strings.TrimRight(strings.Join(parts, dumpGap), " ") + "\n"
}
