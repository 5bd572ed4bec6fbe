package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/logging"
)

// File persists Settings at a fixed path. Failures are logged and
// reported as false; they never stop the game.
type File struct {
	path   string
	logger *log.Logger
}

// NewFile returns a File for path. "~" is expanded to the home directory.
func NewFile(path string, logger *log.Logger) *File {
	return &File{
		path:   expandHome(path),
		logger: logging.OrDiscard(logger).WithPrefix("settings"),
	}
}

// Path returns the resolved file path.
func (f *File) Path() string { return f.path }

// Load reads the file into s. Keys missing from the file keep their
// current value. It returns false if the file could not be read.
func (f *File) Load(s *Settings) bool {
	fh, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Info("no settings file, using defaults", "path", f.path)
		} else {
			f.logger.Warn("cannot open settings", "path", f.path, "error", err)
		}
		return false
	}
	defer fh.Close()

	if err := Decode(fh, s, f.logger); err != nil {
		f.logger.Warn("cannot read settings", "path", f.path, "error", err)
		return false
	}
	f.logger.Debug("settings loaded", "path", f.path)
	return true
}

// Save writes s to the file through a temp file and rename, so a crash
// never leaves a truncated file behind.
func (f *File) Save(s Settings) bool {
	if err := f.save(s); err != nil {
		f.logger.Warn("cannot save settings", "path", f.path, "error", err)
		return false
	}
	f.logger.Debug("settings saved", "path", f.path)
	return true
}

func (f *File) save(s Settings) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("settings: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := Encode(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("settings: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("settings: replace file: %w", err)
	}
	return nil
}

// Encode writes s as key=value lines in Keys order.
func Encode(w io.Writer, s Settings) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# starfall settings")
	for _, key := range Keys {
		value, _ := s.Get(key)
		fmt.Fprintf(bw, "%s=%s\n", key, value)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("settings: write: %w", err)
	}
	return nil
}

// Decode reads key=value lines into s. Blank lines and lines starting
// with '#' are ignored. Malformed lines and bad values are skipped with a
// warning; unknown keys are ignored. Only read errors are returned.
func Decode(r io.Reader, s *Settings, logger *log.Logger) error {
	logger = logging.OrDiscard(logger)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			logger.Warn("skipping malformed line", "line", lineNo, "text", line)
			continue
		}

		if err := s.Set(key, value); err != nil {
			if errors.Is(err, ErrUnknownKey) {
				logger.Debug("ignoring unknown key", "line", lineNo, "key", key)
				continue
			}
			logger.Warn("skipping invalid value", "line", lineNo, "error", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("settings: read: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
