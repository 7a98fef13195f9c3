package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [FILE]",
		Short: "Re-check a LUT library whenever it changes",
		Long: `Check a LUT library, then check it again every time the file is written,
until interrupted. Useful while hand-tuning area and delay figures.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)

	path := cmdCtx.Cfg.Library
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no library file given and no library configured")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	recheck := func() {
		res := checkFile(cmdCtx, path, &CheckOptions{})
		if res.Error != "" {
			cmdCtx.Renderer.Error(res.Error)
			cmdCtx.reportDiagnostics(res.Path, res.Diagnostics)
			return
		}
		cmdCtx.reportDiagnostics(res.Path, res.Diagnostics)
		cmdCtx.Renderer.Success(fmt.Sprintf("%s: %d LUT sizes, %s, %d warning(s)",
			res.Path, res.MaxSize, delayMode(res.VariablePinDelays), len(res.Diagnostics)))
	}

	recheck()
	cmdCtx.Renderer.Muted(fmt.Sprintf("watching %s, press Ctrl+C to stop", path))

	return watchLoop(cmd.Context(), watcher, abs, cmdCtx.Cfg.WatchDebounce, cmdCtx.Logger, recheck)
}

// watchLoop calls onChange for every write or create of target once no
// further event has arrived for wait.
// It returns when ctx is cancelled or the watcher shuts down.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, wait time.Duration, logger *slog.Logger, onChange func()) error {
	var debounce *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fire:
			onChange()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Clean(event.Name) != target {
				continue
			}
			logger.Debug("library changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(wait, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}
