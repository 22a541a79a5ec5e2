// Package logger builds the zerolog logger shared by the console and the
// SDK packages. Output goes to stdout by default and can be redirected to a
// file or an arbitrary buffer.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Build accumulates logger options before Make is called.
type Build struct {
	writer io.Writer
	path   string
	level  string
	pretty bool
}

// Log is a ready-to-use logger plus the file handle backing it, if any.
type Log struct {
	writer  io.Writer
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *Build {
	return &Build{level: zerolog.LevelInfoValue}
}

// FromPath appends log output to the file at path.
func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

// FromBuffer writes log output to w instead of stdout.
func (b *Build) FromBuffer(w io.Writer) *Build {
	b.writer = w
	return b
}

// Level sets the minimum level by name (debug, info, warn, error).
func (b *Build) Level(level string) *Build {
	b.level = level
	return b
}

// Pretty switches to the human-readable console writer.
func (b *Build) Pretty() *Build {
	b.pretty = true
	return b
}

func (b *Build) Make() (*Log, error) {
	lg := &Log{writer: os.Stdout}
	if b.writer != nil {
		lg.writer = b.writer
	}
	if b.path != "" {
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		lg.LogFile = f
		lg.writer = zerolog.SyncWriter(f)
	}
	if b.pretty {
		lg.writer = zerolog.ConsoleWriter{Out: lg.writer}
	}
	level, err := zerolog.ParseLevel(b.level)
	if err != nil {
		return nil, err
	}
	lg.Logger = zerolog.New(lg.writer).Level(level).With().Timestamp().Logger()
	return lg, nil
}

// Close releases the log file when logging to a path.
func (lg *Log) Close() error {
	if lg.LogFile == nil {
		return nil
	}
	return lg.LogFile.Close()
}
