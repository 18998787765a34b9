package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"bookshelf/internal/app"
	"bookshelf/internal/catalog"
	"bookshelf/internal/httpx"
	"bookshelf/internal/platform/crypto"

	"github.com/spf13/cobra"
)

type libraryLoader func(ctx context.Context) (*catalog.Library, error)

func defaultLoader(ctx context.Context) (*catalog.Library, error) {
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	lib, _, err := app.LoadLibrary(ctx, cfg)
	return lib, err
}

// cli holds the library shared by the catalog subcommands.
type cli struct {
	load libraryLoader
	lib  *catalog.Library
}

func (c *cli) loadLibrary(cmd *cobra.Command, _ []string) error {
	lib, err := c.load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	c.lib = lib
	return nil
}

func newRootCmd(load libraryLoader) *cobra.Command {
	c := &cli{load: load}

	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Query and edit the book catalog",
		Long: `catalogctl loads the catalog from CSV files or Postgres (see CATALOG_SOURCE)
and runs a single query or edit against it.`,
		SilenceUsage: true,
	}

	catalogCmds := []*cobra.Command{
		{
			Use:   "stats",
			Short: "Show catalog statistics",
			Args:  cobra.NoArgs,
			RunE:  c.runStats,
		},
		newBooksCmd(c),
		{
			Use:   "find [title]",
			Short: "Find a book by its exact title",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runFind,
		},
		{
			Use:   "search [author]",
			Short: "Search books whose author contains the text, ignoring case",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runSearch,
		},
		{
			Use:   "categories-of [author]",
			Short: "List the categories with a book by exactly this author",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runCategoriesOf,
		},
		{
			Use:   "unknown",
			Short: "List categories that books referenced but the category list did not define",
			Args:  cobra.NoArgs,
			RunE:  c.runUnknown,
		},
		{
			Use:   "delete-authors [authors]",
			Short: "Delete every book by the given comma-separated authors",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runDeleteAuthors,
		},
		{
			Use:   "rename-category [old] [new]",
			Short: "Rename a category",
			Args:  cobra.ExactArgs(2),
			RunE:  c.runRenameCategory,
		},
	}
	for _, cmd := range catalogCmds {
		cmd.PreRunE = c.loadLibrary
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newTokenCmd())
	return rootCmd
}

func newBooksCmd(c *cli) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List books, optionally only those of one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books := c.lib.Books()
			if category != "" {
				if _, ok := c.lib.CategoryByName(category); !ok {
					return fmt.Errorf("%w: %s", catalog.ErrCategoryNotFound, category)
				}
				books = c.lib.BooksInCategory(category)
			}
			printBooks(cmd.OutOrStdout(), c.lib, books)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list books in this category")
	return cmd
}

func (c *cli) runStats(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	lib := c.lib

	fmt.Fprintln(out, styles.Title.Render("Catalog"))
	printField(out, "Books", fmt.Sprint(lib.Len()))
	printField(out, "Categories", fmt.Sprint(len(lib.Categories())))

	if avg, err := lib.AverageRating(); err == nil {
		printField(out, "Average rating", fmt.Sprintf("%.2f", avg))
	} else {
		printField(out, "Average rating", styles.Muted.Render("n/a"))
	}
	if cat := lib.CategoryWithMostBooks(); cat != nil {
		printField(out, "Most books", fmt.Sprintf("%s (%d)", cat.Name(), cat.CountBooks()))
	}
	if cat := lib.CategoryWithBestAverageRating(); cat != nil {
		avg, _ := cat.AverageRating()
		printField(out, "Best average", fmt.Sprintf("%s (%.2f)", cat.Name(), avg))
	}
	printField(out, "Without cover", fmt.Sprint(lib.CountBooksWithoutCover()))
	printField(out, "Author in several categories", yesNo(lib.HasAuthorInMultipleCategories()))
	printField(out, "Unknown categories", yesNo(lib.HasUnknownCategories()))
	return nil
}

func (c *cli) runFind(cmd *cobra.Command, args []string) error {
	book, ok := c.lib.FindBookByTitle(args[0])
	if !ok {
		return fmt.Errorf("%w: %q", catalog.ErrBookNotFound, args[0])
	}
	printBooks(cmd.OutOrStdout(), c.lib, []*catalog.Book{book})
	return nil
}

func (c *cli) runSearch(cmd *cobra.Command, args []string) error {
	books := c.lib.FindBooksByAuthor(args[0])
	if len(books) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("no books found"))
		return nil
	}
	printBooks(cmd.OutOrStdout(), c.lib, books)
	return nil
}

func (c *cli) runCategoriesOf(cmd *cobra.Command, args []string) error {
	cats := c.lib.FindCategoriesByAuthor(args[0])
	if len(cats) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Muted.Render("no categories found"))
		return nil
	}
	printCategories(cmd.OutOrStdout(), cats)
	return nil
}

func (c *cli) runUnknown(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !c.lib.HasUnknownCategories() {
		fmt.Fprintln(out, styles.Muted.Render("no unknown categories"))
		return nil
	}
	recorded := c.lib.UnknownCategoryNames()
	for i, cat := range c.lib.UnknownCategories() {
		line := cat.Name()
		if recorded[i] != cat.Name() {
			line += styles.Muted.Render(" (recorded as " + recorded[i] + ")")
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func (c *cli) runDeleteAuthors(cmd *cobra.Command, args []string) error {
	n, err := c.lib.DeleteBooksByAuthors(args[0])
	var notFound *catalog.AuthorsNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render("nothing deleted"))
		if len(notFound.Found) > 0 {
			printField(cmd.ErrOrStderr(), "Found", strings.Join(notFound.Found, ", "))
		}
		printField(cmd.ErrOrStderr(), "Not found", strings.Join(notFound.NotFound, ", "))
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s deleted %d books, %d remain\n", styles.Success.Render("✓"), n, c.lib.Len())
	return nil
}

func (c *cli) runRenameCategory(cmd *cobra.Command, args []string) error {
	if err := c.lib.RenameCategory(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s renamed %s to %s\n", styles.Success.Render("✓"), args[0], args[1])
	return nil
}

func newTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			token, _, err := crypto.GenerateToken(secret, subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "catalogctl", "token subject")
	cmd.Flags().StringVar(&role, "role", httpx.RoleAdmin, "token role")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
