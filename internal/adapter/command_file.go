package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// SubmitFunc hands one command line to the scanner session.
type SubmitFunc func(ctx context.Context, command string) error

// CommandFileSource tails a text file and submits every appended line as a
// scanner command. A backend can drive the scanner by appending to the file.
type CommandFileSource struct {
	path    string
	logger  *zap.Logger
	offset  int64
	partial []byte
}

// NewCommandFileSource creates a source for path. When fromStart is false,
// lines already present in the file are skipped.
func NewCommandFileSource(path string, fromStart bool, logger *zap.Logger) (*CommandFileSource, error) {
	src := &CommandFileSource{path: filepath.Clean(path), logger: logger}

	if fromStart {
		return src, nil
	}

	info, err := os.Stat(src.path)
	switch {
	case err == nil:
		src.offset = info.Size()
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("stat command file: %w", err)
	}

	return src, nil
}

// Run watches the file until ctx is done. Submission errors stop the source.
func (s *CommandFileSource) Run(ctx context.Context, submit SubmitFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so the file may be created or replaced later.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	s.logger.Info("watching command file", zap.String("path", s.path))

	if err := s.drain(ctx, submit); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != s.path {
				continue
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				s.offset = 0
				s.partial = nil

				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := s.drain(ctx, submit); err != nil {
					return err
				}
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			s.logger.Warn("command file watcher error", zap.Error(werr))
		}
	}
}

func (s *CommandFileSource) drain(ctx context.Context, submit SubmitFunc) error {
	lines, err := s.readNew()
	if err != nil {
		s.logger.Warn("read command file", zap.Error(err))
		return nil
	}

	for _, line := range lines {
		if err := submit(ctx, line); err != nil {
			return err
		}
	}

	return nil
}

// readNew returns the complete lines appended since the previous read. A
// trailing line without a newline is held back until it is finished.
func (s *CommandFileSource) readNew() ([]string, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if info.Size() < s.offset {
		// Truncated: start over.
		s.offset = 0
		s.partial = nil
	}

	if _, err := file.Seek(s.offset, io.SeekStart); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	s.offset += int64(len(data))
	data = append(s.partial, data...)

	var lines []string

	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}

		line := string(bytes.TrimRight(data[:idx], "\r"))
		lines = append(lines, line)
		data = data[idx+1:]
	}

	s.partial = append([]byte(nil), data...)

	return lines, nil
}
