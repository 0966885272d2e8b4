package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scribe/internal/document"
	"scribe/internal/transcript"
	"scribe/internal/tui"
)

var watchSessionID string

// sessionIDPattern matches the UUID-shaped session ids Claude Code uses for
// log filenames.
var sessionIDPattern = regexp.MustCompile(`^[0-9a-fA-F-]{8,}$`)

var watchCmd = &cobra.Command{
	Use:   "watch <log.jsonl>",
	Short: "Follow a conversation log live as a rendered transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logPath := args[0]
		if _, err := os.Stat(logPath); err != nil {
			return fmt.Errorf("log file: %w", err)
		}

		sessionID := watchSessionID
		if sessionID == "" {
			sessionID = sessionIDFromPath(logPath)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		header := document.NewHeader(sessionID, cwd, time.Now())

		render := func() (string, error) {
			records := transcript.ReadLog(logPath)
			return header + transcript.RenderFull(records), nil
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer watcher.Close()
		// Watch the directory: the log may be replaced rather than appended.
		if err := watcher.Add(filepath.Dir(logPath)); err != nil {
			return fmt.Errorf("watching log directory: %w", err)
		}

		updates := make(chan struct{}, 1)
		go func() {
			defer close(updates)
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if ev.Name != logPath {
						continue
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					select {
					case updates <- struct{}{}:
					default: // a reload is already pending
					}
				case _, ok := <-watcher.Errors:
					if !ok {
						return
					}
				}
			}
		}()

		return tui.Run(logPath, render, updates)
	},
}

// sessionIDFromPath derives a session id from the log filename, or
// synthesizes one when the name does not look like an id.
func sessionIDFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if sessionIDPattern.MatchString(stem) {
		return stem
	}
	return uuid.New().String()
}

func init() {
	watchCmd.Flags().StringVar(&watchSessionID, "session", "", "session id to display (default: derived from the filename)")
	rootCmd.AddCommand(watchCmd)
}
