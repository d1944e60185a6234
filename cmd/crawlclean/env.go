package main

import (
	"io"
	"os"
	"time"

	crawlclean "github.com/alnah/go-crawlclean"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	WorkDir string                  // directory cleanup targets resolve against
	Table   crawlclean.ProcessTable // nil = real OS process table
}

// DefaultEnv returns the production environment: real clock, real streams,
// current working directory, real process table.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		WorkDir: ".",
	}
}
