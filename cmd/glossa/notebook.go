package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/glossa/internal/config"
	"github.com/at-ishikawa/glossa/internal/database"
	"github.com/at-ishikawa/glossa/internal/notebook"
)

type FormatFlag string

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	switch v {
	case string(notebook.ExportFormatMarkdown):
		*f = FormatFlag(notebook.ExportFormatMarkdown)
	case string(notebook.ExportFormatYAML):
		*f = FormatFlag(notebook.ExportFormatYAML)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q",
			v, notebook.ExportFormatMarkdown, notebook.ExportFormatYAML)
	}
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

func newNotebookCommand() *cobra.Command {
	notebookCommands := &cobra.Command{
		Use:   "notebook",
		Short: "Manage saved vocabulary entries",
	}

	var listFromDB bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var items []notebook.Item
			if listFromDB {
				items, err = listDatabaseItems(cmd, cfg)
				if err != nil {
					return err
				}
			} else {
				store, err := notebook.Open(cfg.Notebook.File)
				if err != nil {
					return fmt.Errorf("notebook.Open > %w", err)
				}
				items = store.List()
			}

			if len(items) == 0 {
				fmt.Println("The notebook is empty")
				return nil
			}
			for _, item := range items {
				savedAt := time.UnixMilli(item.Date).Format("2006-01-02")
				fmt.Printf("%s  %s (%s): %s\n", savedAt, item.Word, item.TargetLang, item.Definition)
				fmt.Printf("    id: %s\n", item.ID)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listFromDB, "from-db", false, "List the database mirror instead of the local notebook file")
	notebookCommands.AddCommand(listCmd)

	notebookCommands.AddCommand(&cobra.Command{
		Use:   "remove <item id>",
		Short: "Remove a saved entry by its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := notebook.Open(cfg.Notebook.File)
			if err != nil {
				return fmt.Errorf("notebook.Open > %w", err)
			}
			if err := store.Remove(args[0]); err != nil {
				return fmt.Errorf("store.Remove(%s) > %w", args[0], err)
			}
			fmt.Println("Removed the entry from the notebook")
			return nil
		},
	})

	formatFlag := FormatFlag(notebook.ExportFormatMarkdown)
	var generatePDF bool
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved entries as a study deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := notebook.Open(cfg.Notebook.File)
			if err != nil {
				return fmt.Errorf("notebook.Open > %w", err)
			}

			writer := notebook.NewDeckWriter(deckTemplatePath(cfg.Templates.MarkdownDirectory))
			outputFilename, err := writer.Export(
				store.List(),
				notebook.ExportFormat(formatFlag),
				cfg.Outputs.DeckDirectory,
				generatePDF,
				time.Now(),
			)
			if err != nil {
				return fmt.Errorf("writer.Export > %w", err)
			}
			fmt.Printf("Exported the notebook to %s\n", outputFilename)
			return nil
		},
	}
	exportCmd.Flags().Var(&formatFlag, "format", "Export format. Options: markdown, yaml")
	exportCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Generate PDF output in addition to markdown")
	notebookCommands.AddCommand(exportCmd)

	notebookCommands.AddCommand(&cobra.Command{
		Use:   "sync",
		Short: "Mirror the notebook into the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled() {
				return fmt.Errorf("no database is configured")
			}
			store, err := notebook.Open(cfg.Notebook.File)
			if err != nil {
				return fmt.Errorf("notebook.Open > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			repository := notebook.NewDBItemRepository(db)
			if err := notebook.Sync(cmd.Context(), repository, store.List()); err != nil {
				return fmt.Errorf("notebook.Sync > %w", err)
			}
			fmt.Println("Synced the notebook to the database")
			return nil
		},
	})

	return notebookCommands
}

func listDatabaseItems(cmd *cobra.Command, cfg *config.Config) ([]notebook.Item, error) {
	if !cfg.Database.Enabled() {
		return nil, fmt.Errorf("no database is configured")
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	repository := notebook.NewDBItemRepository(db)
	records, err := repository.FindAll(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("repository.FindAll > %w", err)
	}

	items := make([]notebook.Item, 0, len(records))
	for _, record := range records {
		item, err := notebook.FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("notebook.FromRecord(%s) > %w", record.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}
