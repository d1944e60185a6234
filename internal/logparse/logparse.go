// Package logparse analyzes crawler worker logs for politeness violations.
//
// Worker logs contain lines of the form
//
//	2025-01-02 15:04:05,123 - Worker-3 - INFO - Downloaded https://example.edu/page, status <200>
//
// The analyzer extracts download events, buckets them by domain group, and
// measures the delay between consecutive requests to the same group. A delay
// below the configured threshold is a politeness violation.
package logparse

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-crawlclean/internal/config"
)

// logPattern matches one download event. Lines that do not match (startup
// messages, retries, other log levels) are skipped without error.
var logPattern = regexp.MustCompile(
	`(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}) - Worker-\d+ - \w+ - Downloaded (https?://[^\s,]+)`)

// timeLayout matches the Python logging default timestamp format.
const timeLayout = "2006-01-02 15:04:05,000"

// Entry is one parsed download event.
type Entry struct {
	Time time.Time
	URL  string
}

// ParseLine extracts a download event from one log line. The second return
// value is false for lines that are not download events.
func ParseLine(line string) (Entry, bool) {
	m := logPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	ts, err := time.Parse(timeLayout, m[1])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Time: ts, URL: m[2]}, true
}

// Violation records one request that followed the previous request to the
// same domain group too quickly.
type Violation struct {
	Time   time.Time     `json:"time"`
	URL    string        `json:"url"`
	Delay  time.Duration `json:"delay"`
	Source string        `json:"source"` // log file the line came from
}

// groupStats accumulates per-group counters while files are fed in.
type groupStats struct {
	requests   int
	delayTotal time.Duration
	delayCount int
	minDelay   time.Duration
	maxDelay   time.Duration
	violations []Violation
}

// Analyzer consumes log files and produces a politeness report. It is not
// safe for concurrent use; feed files sequentially, in chronological order.
type Analyzer struct {
	cfg        *config.Config
	minDelay   time.Duration
	lastAccess map[string]time.Time
	stats      map[string]*groupStats
}

// NewAnalyzer builds an Analyzer from config. A nil config uses defaults.
func NewAnalyzer(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Analyzer{
		cfg:        cfg,
		minDelay:   time.Duration(cfg.MinDelayMs) * time.Millisecond,
		lastAccess: make(map[string]time.Time),
		stats:      make(map[string]*groupStats),
	}
}

// AddFile scans one log file. Source names the file for violation records.
func (a *Analyzer) AddFile(source string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// Crawler log lines with long URLs can exceed the default buffer.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		entry, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		a.add(source, entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning %s: %w", source, err)
	}
	return nil
}

// add records one download event against its domain group.
func (a *Analyzer) add(source string, entry Entry) {
	group := a.groupFor(entry.URL)
	st := a.stats[group]
	if st == nil {
		st = &groupStats{}
		a.stats[group] = st
	}
	st.requests++

	if last, ok := a.lastAccess[group]; ok {
		delay := entry.Time.Sub(last)
		st.delayTotal += delay
		st.delayCount++
		if st.delayCount == 1 || delay < st.minDelay {
			st.minDelay = delay
		}
		if delay > st.maxDelay {
			st.maxDelay = delay
		}
		if delay < a.minDelay {
			st.violations = append(st.violations, Violation{
				Time:   entry.Time,
				URL:    entry.URL,
				Delay:  delay,
				Source: source,
			})
		}
	}
	a.lastAccess[group] = entry.Time
}

// groupFor maps a URL onto a domain group name. A host matches a group when
// it equals or is a subdomain of one of the group's hosts; unmatched hosts
// report under their own name.
func (a *Analyzer) groupFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	host := strings.ToLower(u.Hostname())
	for _, g := range a.cfg.Domains {
		for _, h := range g.Hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return g.Name
			}
		}
	}
	return host
}

// GroupReport summarizes one domain group.
type GroupReport struct {
	Name           string        `json:"name"`
	Requests       int           `json:"requests"`
	AvgDelay       time.Duration `json:"avgDelay"`
	MinDelay       time.Duration `json:"minDelay"`
	MaxDelay       time.Duration `json:"maxDelay"`
	ViolationCount int           `json:"violationCount"`
	Violations     []Violation   `json:"violations,omitempty"` // capped at MaxSamples
}

// Report is the full analysis result, groups sorted by name.
type Report struct {
	Groups          []GroupReport `json:"groups"`
	TotalViolations int           `json:"totalViolations"`
}

// Report builds the final result from everything fed in so far.
func (a *Analyzer) Report() *Report {
	names := make([]string, 0, len(a.stats))
	for name := range a.stats {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &Report{}
	for _, name := range names {
		st := a.stats[name]
		g := GroupReport{
			Name:           name,
			Requests:       st.requests,
			MinDelay:       st.minDelay,
			MaxDelay:       st.maxDelay,
			ViolationCount: len(st.violations),
		}
		if st.delayCount > 0 {
			g.AvgDelay = st.delayTotal / time.Duration(st.delayCount)
		}
		samples := st.violations
		if a.cfg.MaxSamples > 0 && len(samples) > a.cfg.MaxSamples {
			samples = samples[:a.cfg.MaxSamples]
		}
		g.Violations = samples
		report.TotalViolations += len(st.violations)
		report.Groups = append(report.Groups, g)
	}
	return report
}
