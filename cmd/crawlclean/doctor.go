package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	crawlclean "github.com/alnah/go-crawlclean"
	"github.com/alnah/go-crawlclean/internal/fileutil"
)

// doctorResult holds all diagnostic information. Doctor is read-only: it
// reports what a cleanup run would touch without touching anything.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Process   processInfo   `json:"process"`
	Workspace workspaceInfo `json:"workspace"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// processInfo holds process table check results.
type processInfo struct {
	User     string `json:"user,omitempty"`
	Readable bool   `json:"readable"`
	Matching int    `json:"matching"` // processes a cleanup would kill
}

// workspaceInfo holds working directory check results.
type workspaceInfo struct {
	Dir        string         `json:"dir"`
	Writable   bool           `json:"writable"`
	Artifacts  []artifactInfo `json:"artifacts"`
	LogDir     bool           `json:"logDirPresent"`
	LogEntries int            `json:"logEntries"`
}

// artifactInfo reports presence of one fixed cleanup target.
type artifactInfo struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args)
	if err != nil {
		return ExitUsage
	}

	result := runDoctor(env)

	if flags.jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{Status: "ready"}

	checkProcessTable(result, env)
	checkWorkspace(result, env)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkProcessTable verifies the process table is readable and counts the
// processes a cleanup would kill.
func checkProcessTable(result *doctorResult, env *Environment) {
	username, err := crawlclean.CurrentUsername()
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	result.Process.User = username

	table := env.Table
	if table == nil {
		table = crawlclean.NewSystemProcessTable()
	}
	filtered, err := crawlclean.NewFilteringProcessTable(table, username, crawlclean.InterpreterLabel)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}

	procs, err := filtered.Processes(context.Background())
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("process table not readable: %v", err))
		return
	}
	result.Process.Readable = true
	result.Process.Matching = len(procs)
}

// checkWorkspace inspects the working directory for cleanup targets.
func checkWorkspace(result *doctorResult, env *Environment) {
	result.Workspace.Dir = env.WorkDir

	result.Workspace.Writable = fileutil.IsWritable(env.WorkDir)
	if !result.Workspace.Writable {
		result.Errors = append(result.Errors,
			fmt.Sprintf("working directory not writable: %s", env.WorkDir))
	}

	for _, name := range crawlclean.ArtifactFiles {
		result.Workspace.Artifacts = append(result.Workspace.Artifacts, artifactInfo{
			Name:    name,
			Present: fileutil.FileExists(filepath.Join(env.WorkDir, name)),
		})
	}

	logDir := filepath.Join(env.WorkDir, crawlclean.LogDirName)
	result.Workspace.LogDir = fileutil.DirExists(logDir)
	if result.Workspace.LogDir {
		n, err := fileutil.CountEntries(logDir)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not read log directory: %v", err))
		} else {
			result.Workspace.LogEntries = n
		}
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "crawlclean doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Process table")
	if r.Process.Readable {
		fmt.Fprintf(w, "  [OK] Readable as user %s\n", r.Process.User)
		fmt.Fprintf(w, "  [OK] Matching %q processes: %d\n",
			crawlclean.InterpreterLabel, r.Process.Matching)
	} else {
		fmt.Fprintln(w, "  [ERROR] Not readable")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Workspace")
	if r.Workspace.Writable {
		fmt.Fprintf(w, "  [OK] Writable: %s\n", r.Workspace.Dir)
	} else {
		fmt.Fprintf(w, "  [ERROR] Not writable: %s\n", r.Workspace.Dir)
	}
	for _, a := range r.Workspace.Artifacts {
		if a.Present {
			fmt.Fprintf(w, "  [OK] Present: %s\n", a.Name)
		} else {
			fmt.Fprintf(w, "  [OK] Absent: %s\n", a.Name)
		}
	}
	if r.Workspace.LogDir {
		fmt.Fprintf(w, "  [OK] %s/: %d entr(ies)\n", crawlclean.LogDirName, r.Workspace.LogEntries)
	} else {
		fmt.Fprintf(w, "  [OK] %s/: absent\n", crawlclean.LogDirName)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: ready")
	case "warnings":
		fmt.Fprintln(w, "Status: ready (with warnings)")
	case "errors":
		fmt.Fprintln(w, "Status: errors found")
	}
}
