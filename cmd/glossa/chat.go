package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/glossa/internal/audio"
	"github.com/at-ishikawa/glossa/internal/cli"
	"github.com/at-ishikawa/glossa/internal/lookup"
)

func newChatCommand() *cobra.Command {
	var nativeFlag, targetFlag LanguageFlag

	cmd := &cobra.Command{
		Use:   "chat <word or phrase>",
		Short: "Discuss a word interactively with the AI curator",
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

			chatCLI := cli.NewChatCLI(client, entry)
			if err := chatCLI.Run(ctx); err != nil {
				return fmt.Errorf("chatCLI.Run > %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(&nativeFlag, "native", "Native language for the discussion")
	flags.Var(&targetFlag, "target", "Target language of the word")

	return cmd
}
