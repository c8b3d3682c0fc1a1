package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [abbr]",
	Short: "Re-lint a jurisdiction whenever its files change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	abbr := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	base := filepath.Join(lintDataDir, abbr)
	watched := 0
	for _, sub := range []string{"people", "retired", "organizations"} {
		dir := filepath.Join(base, sub)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no record directories under %s", base)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	relint := func() {
		rep, err := lintJurisdiction(abbr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint: %v\n", err)
			return
		}
		printReport(rep)
	}

	fmt.Printf("watching %s (Ctrl-C to stop)\n", base)
	relint()

	// Editors fire bursts of events per save; collapse each burst into
	// one lint run.
	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".yml") {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			fmt.Println()
			relint()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		case <-sig:
			fmt.Println("\nstopped")
			return nil
		}
	}
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before re-linting after a change")
	watchCmd.Flags().StringVar(&lintDataDir, "data", "data", "root of the per-jurisdiction data tree")
	watchCmd.Flags().StringVar(&lintSettingsPath, "settings", "settings.yml", "settings file with seat layouts and custom checks")

	rootCmd.AddCommand(watchCmd)
}
