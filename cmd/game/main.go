package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/driftworks/rockfall/internal/config"
	"github.com/driftworks/rockfall/internal/game"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := game.Options{Rules: config.RulesFromEnv()}

	// Event logging goes to a file so it does not fight the renderer for
	// the terminal.
	if path := config.GetEnv("ROCKFALL_EVENT_LOG", ""); path != "" {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr == nil {
			defer f.Close()
			opts.Logger = log.New(f)
		}
	}

	reader := bufio.NewReader(os.Stdin)
	if err := game.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
