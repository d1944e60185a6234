package crawlclean

import (
	"context"
	"path/filepath"
)

// Reporter receives one human-readable progress line per cleanup milestone.
type Reporter func(line string)

// serviceConfig holds resolved Service settings.
type serviceConfig struct {
	workDir string
	table   ProcessTable
	report  Reporter
}

// Option customizes a Service.
type Option func(*serviceConfig)

// WithWorkDir sets the directory the artifact paths are resolved against.
// Defaults to the current working directory.
func WithWorkDir(dir string) Option {
	return func(cfg *serviceConfig) { cfg.workDir = dir }
}

// WithProcessTable replaces the OS-backed process table. Tests use this to
// avoid touching real processes.
func WithProcessTable(table ProcessTable) Option {
	return func(cfg *serviceConfig) { cfg.table = table }
}

// WithReporter sets the progress line sink. Defaults to discarding lines.
func WithReporter(report Reporter) Option {
	return func(cfg *serviceConfig) { cfg.report = report }
}

// Service runs the fixed cleanup sequence for a crawler workspace.
type Service struct {
	cfg      serviceConfig
	username string
}

// NewService resolves the invoking user and builds a Service. Construction
// fails only when the current user cannot be determined or an injected
// process table is invalid; the cleanup itself never fails on absence.
func NewService(opts ...Option) (*Service, error) {
	cfg := serviceConfig{
		workDir: ".",
		report:  func(string) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	username, err := CurrentUsername()
	if err != nil {
		return nil, err
	}

	if cfg.table == nil {
		cfg.table = NewSystemProcessTable()
	}

	return &Service{cfg: cfg, username: username}, nil
}

// Username returns the resolved owner whose processes are targeted.
func (s *Service) Username() string {
	return s.username
}

// Clean runs the cleanup sequence: kill matching interpreter processes,
// remove the artifact files, then empty the log directory. Each step is
// best-effort; a failing step never prevents the following steps from
// running. The returned Report records what was actually removed.
//
// The first error observed across the steps is returned so callers that
// care can log it. The CLI deliberately ignores it.
func (s *Service) Clean(ctx context.Context) (Report, error) {
	var report Report

	s.cfg.report("Stopping stray " + InterpreterLabel + " processes...")
	filtered, err := NewFilteringProcessTable(s.cfg.table, s.username, InterpreterLabel)
	if err != nil {
		// Only reachable with a nil injected table; construction validates
		// username and label.
		return report, err
	}

	paths := make([]string, len(ArtifactFiles))
	for i, name := range ArtifactFiles {
		paths[i] = filepath.Join(s.cfg.workDir, name)
	}

	killErr := NewProcessCleaner(filtered, &report.KilledPIDs)(ctx)
	s.cfg.report("Removing crawler artifacts...")
	fsErr := Chain(
		NewFileCleaner(paths, &report.RemovedFiles),
		NewDirectoryCleaner(filepath.Join(s.cfg.workDir, LogDirName), &report.ClearedLogs),
	)(ctx)
	s.cfg.report("Cleanup complete.")

	if killErr != nil {
		return report, killErr
	}
	return report, fsErr
}
