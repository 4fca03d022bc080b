package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/glossa/internal/assets"
	"github.com/at-ishikawa/glossa/internal/notebook"
)

func newStoryCommand() *cobra.Command {
	var nativeFlag, targetFlag LanguageFlag
	var generatePDF bool

	cmd := &cobra.Command{
		Use:   "story",
		Short: "Generate a short story from the saved vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := newGeminiClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			nativeLang, targetLang, err := resolveLanguages(cfg, nativeFlag, targetFlag)
			if err != nil {
				return err
			}

			store, err := notebook.Open(cfg.Notebook.File)
			if err != nil {
				return fmt.Errorf("notebook.Open > %w", err)
			}
			words := store.Words()
			if len(words) == 0 {
				return fmt.Errorf("the notebook is empty, save some words first")
			}

			body, err := client.CreateStory(cmd.Context(), words, nativeLang, targetLang)
			if err != nil {
				return fmt.Errorf("client.CreateStory > %w", err)
			}
			if body == "" {
				return fmt.Errorf("the model returned an empty story")
			}

			writer := notebook.NewStoryWriter(storyTemplatePath(cfg.Templates.MarkdownDirectory))
			outputFilename, err := writer.Write(assets.StoryTemplate{
				Date:       time.Now(),
				TargetLang: string(targetLang),
				NativeLang: string(nativeLang),
				Words:      words,
				Body:       body,
			}, cfg.Outputs.StoryDirectory, generatePDF)
			if err != nil {
				return fmt.Errorf("writer.Write > %w", err)
			}

			fmt.Println(body)
			fmt.Printf("\nWrote the story to %s\n", outputFilename)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(&nativeFlag, "native", "Native language used for the story context")
	flags.Var(&targetFlag, "target", "Target language the story is written in")
	flags.BoolVar(&generatePDF, "pdf", false, "Generate PDF output in addition to markdown")

	return cmd
}
