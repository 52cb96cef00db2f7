// Package runner executes one-shot operational tools against the store: it
// opens the database, runs the tool body, always releases the handle and
// turns the outcome into a process exit code.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/config"
	"github.com/nstc-app/management/internal/database"
	"github.com/nstc-app/management/internal/logger"
)

// Policy decides how a failed tool maps to an exit code.
type Policy int

const (
	// FailOnError exits 1 on any error (seed and mutating tools).
	FailOnError Policy = iota
	// LogOnly logs the error and still exits 0 (pure diagnostics).
	LogOnly
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Func is the body of a tool. Human-readable output goes to out.
type Func func(ctx context.Context, db *gorm.DB, out io.Writer) error

// Tool describes one operational executable.
type Tool struct {
	Name   string
	Policy Policy
	// Migrate runs AutoMigrate before the body.
	Migrate bool
	// Skip, when set, is printed instead of running; the store is not opened.
	Skip string
	Run  Func
}

// Runner holds what every tool needs. Out defaults to stdout.
type Runner struct {
	Config config.Config
	Out    io.Writer
}

// Main loads configuration, sets up logging on stderr and runs tool. It is
// the whole of a tool's main function.
func Main(tool Tool) {
	MainFor(func(config.Config) Tool { return tool })
}

// MainFor is Main for tools whose body depends on configuration.
func MainFor(build func(cfg config.Config) Tool) {
	logger.Init(false, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.Log().WithError(err).Error("load config")
		os.Exit(ExitFailure)
	}
	logger.Init(cfg.Debug, os.Stderr)

	r := Runner{Config: cfg, Out: os.Stdout}
	os.Exit(r.Run(context.Background(), build(cfg)))
}

// Run executes tool and returns the exit code. The store handle is released
// on every path, including errors and panics in the body.
func (r Runner) Run(ctx context.Context, tool Tool) (code int) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	log := logger.WithFields(logrus.Fields{"tool": tool.Name})

	if tool.Skip != "" {
		fmt.Fprintln(out, tool.Skip)
		return ExitOK
	}

	defer func() {
		if rec := recover(); rec != nil {
			code = r.fail(log, tool, fmt.Errorf("panic: %v", rec))
		}
	}()

	db, err := database.Connect(r.Config.DatabasePath, database.Options{LogQueries: r.Config.Debug})
	if err != nil {
		return r.fail(log, tool, err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	if tool.Migrate {
		if err := database.Migrate(db); err != nil {
			return r.fail(log, tool, err)
		}
	}

	if err := tool.Run(ctx, db, out); err != nil {
		return r.fail(log, tool, err)
	}
	return ExitOK
}

func (r Runner) fail(log *logrus.Entry, tool Tool, err error) int {
	log.WithError(err).Error("tool failed")
	if tool.Policy == LogOnly {
		return ExitOK
	}
	return ExitFailure
}
