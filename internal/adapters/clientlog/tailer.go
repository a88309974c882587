package clientlog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"elimination-tracker/internal/core/domain"

	"github.com/fsnotify/fsnotify"
)

type Handler interface {
	HandleChat(msg domain.ChatMessage) bool
	HandleJoin(address string)
	HandleLeave()
}

// Tailer follows the game client's log file and feeds parsed events to a
// Handler. It survives rotation and truncation of the file.
type Tailer struct {
	path     string
	interval time.Duration
	handler  Handler

	file    *os.File
	offset  int64
	partial []byte
}

func NewTailer(path string, interval time.Duration, handler Handler) *Tailer {
	return &Tailer{
		path:     filepath.Clean(path),
		interval: interval,
		handler:  handler,
	}
}

// Run blocks until ctx is cancelled. Existing log content is replayed for
// join and leave lines only, so a mid-session start knows which server the
// client is on without re-crediting old kills.
func (t *Tailer) Run(ctx context.Context) error {
	absPath, err := filepath.Abs(t.path)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	t.path = absPath

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(t.path)); err != nil {
		return fmt.Errorf("watch log directory: %w", err)
	}

	defer t.close()

	switch err := t.open(); {
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("Client log does not exist yet, waiting for it", "path", t.path)
	case err != nil:
		return fmt.Errorf("open log file: %w", err)
	default:
		if err := t.read(true); err != nil {
			return fmt.Errorf("replay log file: %w", err)
		}
	}
	slog.Info("Tailing client log", "path", t.path, "offset", t.offset)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.poll()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			t.handleFSEvent(ev)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Log watcher error", "error", err)
		}
	}
}

func (t *Tailer) handleFSEvent(ev fsnotify.Event) {
	if !strings.EqualFold(filepath.Clean(ev.Name), t.path) {
		return
	}

	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		slog.Info("Client log rotated", "path", t.path)
		t.close()
		return
	}

	if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
		t.poll()
	}
}

func (t *Tailer) poll() {
	if t.file == nil {
		if err := t.open(); err != nil {
			return
		}
	}
	if err := t.read(false); err != nil {
		slog.Error("Failed to read client log", "path", t.path, "error", err)
	}
}

func (t *Tailer) open() error {
	f, err := os.Open(t.path)
	if err != nil {
		return err
	}
	t.file = f
	t.offset = 0
	t.partial = nil
	return nil
}

func (t *Tailer) close() {
	if t.file != nil {
		t.file.Close()
		t.file = nil
	}
}

func (t *Tailer) read(replay bool) error {
	info, err := t.file.Stat()
	if err != nil {
		return err
	}

	if info.Size() < t.offset {
		slog.Info("Client log truncated, reading from start", "path", t.path)
		t.offset = 0
		t.partial = nil
	}
	if info.Size() == t.offset {
		return nil
	}

	if _, err := t.file.Seek(t.offset, io.SeekStart); err != nil {
		return err
	}

	r := bufio.NewReaderSize(t.file, 64*1024)
	for {
		chunk, err := r.ReadString('\n')
		t.offset += int64(len(chunk))

		if errors.Is(err, io.EOF) {
			t.partial = append(t.partial, chunk...)
			return nil
		}
		if err != nil {
			return err
		}

		line := string(t.partial) + chunk
		t.partial = nil
		t.dispatch(line, replay)
	}
}

func (t *Tailer) dispatch(line string, replay bool) {
	ev, ok := ParseLine(line)
	if !ok {
		return
	}

	switch ev.Kind {
	case EventChat:
		if !replay {
			t.handler.HandleChat(domain.ChatMessage{Text: ev.Text})
		}
	case EventJoin:
		t.handler.HandleJoin(ev.Address)
	case EventLeave:
		t.handler.HandleLeave()
	}
}
