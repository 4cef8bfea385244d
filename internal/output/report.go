package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"cppstyle/internal/rules"
)

// ReportSink aggregates results and writes a Markdown conformance report
// on Close.
//
// Ordering is deterministic regardless of the order results arrive in:
// files sort ascending by path, findings within a file sort by line, then
// column, then rule ID. Two runs over the same tree produce byte-identical
// reports (modulo the timestamp header).
type ReportSink struct {
	path    string
	mu      sync.Mutex
	results []rules.Result
	profile string
	files   int
	now     func() time.Time
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	return &ReportSink{path: path, now: time.Now}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch t := v.(type) {
	case rules.Result:
		s.results = append(s.results, t)
	case Event:
		if t.Type == "run.started" {
			s.profile = t.Profile
			s.files = t.Files
		}
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := renderReport(s.results, s.profile, s.files, s.now())
	return os.WriteFile(s.path, []byte(content), 0644)
}

type fileFindings struct {
	Path     string
	Failures []rules.Result
	Errors   []rules.Result
}

func renderReport(results []rules.Result, profile string, files int, now time.Time) string {
	perFile := make(map[string]*fileFindings)
	ruleFailCounts := make(map[string]int)
	var totalFail, totalError int

	for _, r := range results {
		switch r.Status {
		case rules.StatusFail:
			ff := perFile[r.File]
			if ff == nil {
				ff = &fileFindings{Path: r.File}
				perFile[r.File] = ff
			}
			ff.Failures = append(ff.Failures, r)
			ruleFailCounts[r.RuleID]++
			totalFail++
		case rules.StatusError:
			ff := perFile[r.File]
			if ff == nil {
				ff = &fileFindings{Path: r.File}
				perFile[r.File] = ff
			}
			ff.Errors = append(ff.Errors, r)
			totalError++
		}
	}

	ordered := make([]*fileFindings, 0, len(perFile))
	for _, ff := range perFile {
		sortFindings(ff.Failures)
		sortFindings(ff.Errors)
		ordered = append(ordered, ff)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Path < ordered[j].Path })

	var b strings.Builder

	b.WriteString("# Style Conformance Report\n\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", now.UTC().Format(time.RFC3339)))

	// --- Summary ---
	b.WriteString("## Summary\n\n")
	if profile != "" {
		b.WriteString(fmt.Sprintf("- **Profile**: %s\n", profile))
	}
	if files > 0 {
		b.WriteString(fmt.Sprintf("- **Files checked**: %d\n", files))
	}
	b.WriteString(fmt.Sprintf("- **Files with findings**: %d\n", len(ordered)))
	b.WriteString(fmt.Sprintf("- **Violations**: %d\n", totalFail))
	b.WriteString(fmt.Sprintf("- **Errors**: %d\n", totalError))
	b.WriteString("\n")

	// --- Violations by rule ---
	b.WriteString("## Violations by Rule\n\n")
	if len(ruleFailCounts) == 0 {
		b.WriteString("No violations.\n\n")
	} else {
		b.WriteString("| Rule | Count |\n")
		b.WriteString("| --- | ---: |\n")
		ruleIDs := make([]string, 0, len(ruleFailCounts))
		for id := range ruleFailCounts {
			ruleIDs = append(ruleIDs, id)
		}
		sort.Strings(ruleIDs)
		for _, id := range ruleIDs {
			b.WriteString(fmt.Sprintf("| %s | %d |\n", id, ruleFailCounts[id]))
		}
		b.WriteString("\n")
	}

	// --- Per-file findings ---
	b.WriteString("## Findings\n\n")
	if len(ordered) == 0 {
		b.WriteString("All checked files conform to the selected style profile.\n")
	} else {
		for _, ff := range ordered {
			b.WriteString(fmt.Sprintf("### %s\n\n", ff.Path))
			for _, r := range ff.Errors {
				b.WriteString(fmt.Sprintf("- **ERROR** `%s`: %s\n", r.RuleID, r.Message))
			}
			for _, r := range ff.Failures {
				loc := ""
				if r.Line > 0 {
					loc = fmt.Sprintf("%d:%d ", r.Line, r.Column)
				}
				b.WriteString(fmt.Sprintf("- %s`%s`: %s\n", loc, r.RuleID, r.Message))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func sortFindings(findings []rules.Result) {
	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleID < b.RuleID
	})
}
