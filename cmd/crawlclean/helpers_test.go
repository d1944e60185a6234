package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	crawlclean "github.com/alnah/go-crawlclean"
)

// fakeTable is a ProcessTable serving a fixed slice.
type fakeTable struct {
	procs []crawlclean.Process
	err   error
}

func (t *fakeTable) Processes(ctx context.Context) ([]crawlclean.Process, error) {
	return t.procs, t.err
}

// testEnv bundles an Environment with its captured output buffers.
type testEnv struct {
	env    *Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment writing to buffers, rooted in a fresh
// temp dir, with an empty fake process table.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &testEnv{
		env: &Environment{
			Now:     time.Now,
			Stdout:  stdout,
			Stderr:  stderr,
			WorkDir: t.TempDir(),
			Table:   &fakeTable{},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// seedWorkspace populates the env's work dir with every cleanup target.
func seedWorkspace(t *testing.T, env *Environment) {
	t.Helper()
	for _, name := range crawlclean.ArtifactFiles {
		writeTestFile(t, filepath.Join(env.WorkDir, name), "x")
	}
	logs := filepath.Join(env.WorkDir, crawlclean.LogDirName)
	if err := os.Mkdir(logs, 0o750); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, filepath.Join(logs, "Worker-1.log"), "x")
}

// writeTestFile writes content to path, failing the test on error.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
