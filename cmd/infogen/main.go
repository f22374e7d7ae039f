package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"golang.org/x/term"

	"github.com/zarlcorp/infogen/internal/analytics"
	"github.com/zarlcorp/infogen/internal/cli"
	"github.com/zarlcorp/infogen/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("infogen"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	tracker := analytics.New(analytics.Config{Version: version})
	tracker.TrackAppStart()
	defer func() {
		tracker.TrackAppClose()
		tracker.Close()
	}()

	if len(os.Args) > 1 {
		runCLI(ctx, tracker, os.Args[1])
		_ = app.Close()
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "usage: infogen <names|phones|vcf|preview|stats|version> [flags]")
		_ = app.Close()
		os.Exit(2)
	}

	if err := runTUI(tracker); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, tracker *analytics.Client, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("infogen %s\n", version)
	case "names":
		tracker.TrackFeature("names", nil)
		cli.CmdNames(os.Args[2:])
	case "phones":
		tracker.TrackFeature("phones", nil)
		cli.CmdPhones(os.Args[2:])
	case "vcf":
		tracker.TrackFeature("vcf", nil)
		cli.CmdVCF(os.Args[2:])
	case "preview":
		tracker.TrackFeature("preview", nil)
		cli.CmdPreview(os.Args[2:])
	case "stats":
		cli.CmdStats(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "infogen: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI(tracker *analytics.Client) error {
	tracker.TrackFeature("tui", nil)

	m := tui.New(version)
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
