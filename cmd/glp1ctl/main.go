package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/glp1-companion/cmd/glp1ctl/ui"
	"github.com/redmonkez12/glp1-companion/internal/config"
	"github.com/redmonkez12/glp1-companion/internal/content"
	"github.com/redmonkez12/glp1-companion/internal/database"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glp1ctl",
		Short:         "Administer the GLP-1 companion database",
		Long:          "Apply schema migrations and manage the educational content catalog in Postgres. Connection settings come from the same DB_* variables as the API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage schema migrations",
	}
	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withDB(func(ctx context.Context, db *bun.DB, cmd *cobra.Command) error {
				if err := database.Migrate(ctx, db.DB); err != nil {
					return err
				}
				ui.PrintSuccess("Migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: withDB(func(ctx context.Context, db *bun.DB, cmd *cobra.Command) error {
				return database.MigrationStatus(ctx, db.DB)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withDB(func(ctx context.Context, db *bun.DB, cmd *cobra.Command) error {
				if err := database.Rollback(ctx, db.DB); err != nil {
					return err
				}
				ui.PrintSuccess("Rolled back one migration")
				return nil
			}),
		},
	)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the content catalog if it is empty",
		RunE:  withDB(runSeed),
	}
	seedCmd.Flags().String("file", "", "YAML catalog to load instead of the built-in one")

	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and extend the content catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE:  withDB(runContentList),
	}
	listCmd.Flags().String("tags", "", "Only items sharing one of these comma separated tags")

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog item (prompts for anything not given as a flag)",
		RunE:  withDB(runContentAdd),
	}
	addCmd.Flags().String("title", "", "Item title")
	addCmd.Flags().String("description", "", "Item description")
	addCmd.Flags().String("type", "", "Item type (nutrition, exercise, behavioral)")
	addCmd.Flags().String("tags", "", "Comma separated tags")
	addCmd.Flags().String("url", "", "Optional media URL")
	addCmd.Flags().String("duration", "", "Optional duration label, e.g. \"5 min read\"")

	contentCmd.AddCommand(listCmd, addCmd)
	rootCmd.AddCommand(migrateCmd, seedCmd, contentCmd)
	return rootCmd
}

type dbRunFunc func(ctx context.Context, db *bun.DB, cmd *cobra.Command) error

// withDB opens Postgres for the duration of a command and reports errors
// in the CLI's error style
func withDB(run dbRunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		db, err := database.Open(ctx, config.LoadDatabase())
		if err != nil {
			ui.PrintError(err.Error())
			return err
		}
		defer db.Close()

		if err := run(ctx, db, cmd); err != nil {
			ui.PrintError(err.Error())
			return err
		}
		return nil
	}
}

func runSeed(ctx context.Context, db *bun.DB, cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("file")

	items, err := loadCatalog(path)
	if err != nil {
		return err
	}

	n, err := content.Seed(ctx, content.NewRepository(db), items)
	if err != nil {
		return err
	}
	if n == 0 {
		ui.PrintInfo("Catalog already has content, nothing seeded")
		return nil
	}

	ui.PrintSuccess(fmt.Sprintf("Seeded %d items", n))
	return nil
}

func loadCatalog(path string) ([]content.NewItem, error) {
	if path == "" {
		return content.DefaultItems()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return content.LoadItems(f)
}

func runContentList(ctx context.Context, db *bun.DB, cmd *cobra.Command) error {
	tags, _ := cmd.Flags().GetString("tags")

	items, err := content.NewRepository(db).List(ctx, content.ParseTags(tags))
	if err != nil {
		return err
	}

	ui.PrintItems(items)
	return nil
}

func runContentAdd(ctx context.Context, db *bun.DB, cmd *cobra.Command) error {
	in := itemFromFlags(cmd)

	// Interactive mode when any required field is missing
	if !isComplete(in) {
		var err error
		in, err = ui.RunContentForm(in)
		if err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
	}

	item, err := content.Add(ctx, content.NewRepository(db), in)
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Added %q (%s)", item.Title, item.ID))
	return nil
}

func itemFromFlags(cmd *cobra.Command) content.NewItem {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	itemType, _ := cmd.Flags().GetString("type")
	tags, _ := cmd.Flags().GetString("tags")
	url, _ := cmd.Flags().GetString("url")
	duration, _ := cmd.Flags().GetString("duration")

	in := content.NewItem{
		Title:       title,
		Description: description,
		Type:        content.Type(itemType),
		Tags:        content.ParseTags(tags),
	}
	if url != "" {
		in.URL = &url
	}
	if duration != "" {
		in.Duration = &duration
	}
	return in
}

func isComplete(in content.NewItem) bool {
	return in.Title != "" && in.Description != "" && in.Type != ""
}
