package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/glossa/internal/audio"
	"github.com/at-ishikawa/glossa/internal/cli"
	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/lookup"
	"github.com/at-ishikawa/glossa/internal/notebook"
)

type LanguageFlag string

func (l *LanguageFlag) Set(val string) error {
	lang, err := dictionary.ParseLanguage(val)
	if err != nil {
		return fmt.Errorf("invalid value %q, valid values are %v", val, dictionary.AllLanguages)
	}
	*l = LanguageFlag(lang)
	return nil
}

func (l LanguageFlag) String() string {
	return string(l)
}

func (l *LanguageFlag) Type() string {
	return "Language"
}

var (
	_ pflag.Value = (*LanguageFlag)(nil)
)

func newLookupCommand() *cobra.Command {
	var nativeFlag, targetFlag LanguageFlag
	var playAudio bool
	var saveEntry bool

	cmd := &cobra.Command{
		Use:   "lookup <word or phrase>",
		Short: "Look up a word with AI-generated definition, examples and audio",
		Args:  cobra.ExactArgs(1),
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

			ctx := cmd.Context()
			searcher := lookup.NewSearcher(client, audio.NewCache())
			entry, err := searcher.Search(ctx, args[0], nativeLang, targetLang)
			if err != nil {
				return fmt.Errorf("searcher.Search > %w", err)
			}

			renderer := cli.NewEntryRenderer(os.Stdout)
			renderer.Render(entry)

			// The image and speech prefetches run in the background. Wait for
			// them so playback and the rendered illustration note are complete.
			searcher.Wait()
			if enriched, ok := searcher.Current(); ok {
				entry = enriched
				if entry.ImageURL != "" {
					fmt.Printf("\nIllustration generated (%d bytes)\n", len(entry.ImageURL))
				}
			}

			if saveEntry {
				store, err := notebook.Open(cfg.Notebook.File)
				if err != nil {
					return fmt.Errorf("notebook.Open > %w", err)
				}
				saved, err := store.Toggle(entry)
				if err != nil {
					return fmt.Errorf("store.Toggle > %w", err)
				}
				if saved {
					fmt.Printf("Saved %q to the notebook\n", entry.Word)
				} else {
					fmt.Printf("Removed %q from the notebook\n", entry.Word)
				}
			}

			if playAudio {
				speaker := audio.NewSpeaker(client, searcher.Cache(), audio.NewOtoSink())
				if err := speaker.Play(ctx, entry.Word, entry.Word, entry.TargetLang); err != nil {
					return fmt.Errorf("speaker.Play > %w", err)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(&nativeFlag, "native", fmt.Sprintf("Native language. Possible values are %v", dictionary.AllLanguages))
	flags.Var(&targetFlag, "target", fmt.Sprintf("Target language. Possible values are %v", dictionary.AllLanguages))
	flags.BoolVar(&playAudio, "play", false, "Play the pronunciation of the word after the lookup")
	flags.BoolVar(&saveEntry, "save", false, "Toggle the entry in the notebook")

	return cmd
}
