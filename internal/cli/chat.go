package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference"
)

var errEnd = errors.New("end of session")

const (
	chatFallbackEmptyReply = "Pardon? Could you rephrase your inquiry?"
	chatFallbackSendError  = "Connection interrupted. Let us try once more."
)

// ChatCLI runs an interactive discussion about a single dictionary entry.
type ChatCLI struct {
	session     inference.ChatSession
	entry       dictionary.Entry
	stdinReader *bufio.Reader
	writer      io.Writer
	bold        *color.Color
	italic      *color.Color
}

func NewChatCLI(client inference.Client, entry dictionary.Entry) *ChatCLI {
	return &ChatCLI{
		session:     client.NewChatSession(entry),
		entry:       entry,
		stdinReader: bufio.NewReader(os.Stdin),
		writer:      os.Stdout,
		bold:        color.New(color.Bold),
		italic:      color.New(color.Italic),
	}
}

func (cli *ChatCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	_, _ = cli.bold.Fprintf(
		cli.writer,
		"Welcome. I am here to discuss the nuances of %q. What aspects shall we explore?\n",
		cli.entry.Word,
	)
	_, _ = cli.italic.Fprintln(cli.writer, `Type "exit" to finish the conversation.`)

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.turn(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// turn reads one user message and prints the reply. A backend failure does
// not end the session.
func (cli *ChatCLI) turn(ctx context.Context) error {
	_, _ = cli.bold.Fprint(cli.writer, "> ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("stdinReader.ReadString > %w", err)
	}

	message := strings.TrimSpace(line)
	if message == "" {
		return nil
	}
	if message == "exit" || message == "quit" {
		return errEnd
	}

	reply, err := cli.session.SendMessage(ctx, message)
	if err != nil {
		_, _ = cli.italic.Fprintln(cli.writer, chatFallbackSendError)
		return nil
	}
	if strings.TrimSpace(reply) == "" {
		reply = chatFallbackEmptyReply
	}
	_, _ = fmt.Fprintln(cli.writer, reply)
	_, _ = fmt.Fprintln(cli.writer)
	return nil
}
