package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"bookshelf/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

var styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1D9DA0")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7")),
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s: %s\n", styles.Label.Render(label), value)
}

func printBooks(w io.Writer, lib *catalog.Library, books []*catalog.Book) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tAUTHOR\tRATING\tCATEGORY\tCOVER")
	for _, b := range books {
		cover := "-"
		if img := b.Cover(); img != nil {
			cover = fmt.Sprintf("%s %dx%d", img.File, img.Width, img.Height)
		}
		category := ""
		if cat := lib.CategoryOf(b); cat != nil {
			category = cat.Name()
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\t%s\n", b.Title(), b.Author(), b.Rating(), category, cover)
	}
	_ = tw.Flush()
}

func printCategories(w io.Writer, cats []*catalog.Category) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tFICTION\tBOOKS\tAVERAGE")
	for _, c := range cats {
		avg := "-"
		if v, err := c.AverageRating(); err == nil {
			avg = fmt.Sprintf("%.2f", v)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.Name(), yesNo(c.IsFiction()), c.CountBooks(), avg)
	}
	_ = tw.Flush()
}
