package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
)

const logDirectory = "logs"

// Logger writes colored lines to the console and JSON records to logs/airport-<date>.log.
// slog.Default is pointed at the same file so the echo access log lands next to application records.
type Logger struct {
	mu      sync.Mutex
	debug   bool
	console io.Writer
	file    *os.File
	logger  *slog.Logger
}

func NewLogger() *Logger {
	return &Logger{console: color.Output, logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func (l *Logger) Init(debug bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.debug = debug
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var sink io.Writer = io.Discard
	if err := os.MkdirAll(logDirectory, global.DefaultDirectoryPermission); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "fail to create log directory: %v\n", err)
	} else {
		name := filepath.Join(logDirectory, fmt.Sprintf("airport-%s.log", time.Now().Format("2006-01-02")))
		if file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, global.DefaultFilePermissions); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "fail to open log file %s: %v\n", name, err)
		} else {
			l.file = file
			sink = file
		}
	}

	l.logger = slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l.logger)
}

func (l *Logger) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(ctx context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.file == nil {
			return nil
		}
		err := l.file.Close()
		l.file = nil
		return err
	})
}

var (
	debugLabel = color.New(color.FgCyan).SprintFunc()
	infoLabel  = color.New(color.FgGreen).SprintFunc()
	warnLabel  = color.New(color.FgYellow).SprintFunc()
	errorLabel = color.New(color.FgRed).SprintFunc()
	fatalLabel = color.New(color.FgHiRed, color.Bold).SprintFunc()
)

func (l *Logger) write(level slog.Level, label string, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.console, "%s [%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), label, msg)
	l.logger.Log(context.Background(), level, msg)
}

// plain messages accept trailing values the way fmt.Sprint does
func join(msg string, v []interface{}) string {
	if len(v) == 0 {
		return msg
	}
	return msg + " " + fmt.Sprint(v...)
}

func (l *Logger) Debug(msg string, v ...interface{}) {
	if l.debug {
		l.write(slog.LevelDebug, debugLabel("DEBUG"), join(msg, v))
	}
}

func (l *Logger) DebugF(msg string, v ...interface{}) {
	if l.debug {
		l.write(slog.LevelDebug, debugLabel("DEBUG"), fmt.Sprintf(msg, v...))
	}
}

func (l *Logger) Info(msg string, v ...interface{}) {
	l.write(slog.LevelInfo, infoLabel("INFO"), join(msg, v))
}

func (l *Logger) InfoF(msg string, v ...interface{}) {
	l.write(slog.LevelInfo, infoLabel("INFO"), fmt.Sprintf(msg, v...))
}

func (l *Logger) Warn(msg string, v ...interface{}) {
	l.write(slog.LevelWarn, warnLabel("WARN"), join(msg, v))
}

func (l *Logger) WarnF(msg string, v ...interface{}) {
	l.write(slog.LevelWarn, warnLabel("WARN"), fmt.Sprintf(msg, v...))
}

func (l *Logger) Error(msg string, v ...interface{}) {
	l.write(slog.LevelError, errorLabel("ERROR"), join(msg, v))
}

func (l *Logger) ErrorF(msg string, v ...interface{}) {
	l.write(slog.LevelError, errorLabel("ERROR"), fmt.Sprintf(msg, v...))
}

// Fatal only records; the caller decides whether to exit
func (l *Logger) Fatal(msg string, v ...interface{}) {
	l.write(slog.LevelError+4, fatalLabel("FATAL"), join(msg, v))
}

func (l *Logger) FatalF(msg string, v ...interface{}) {
	l.write(slog.LevelError+4, fatalLabel("FATAL"), fmt.Sprintf(msg, v...))
}
