package output

import "cppstyle/internal/rules"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - file.started
// - rule.result
// - file.finished
// - run.finished
//
// JSON mode remains an aggregate of rules.Result values.
type Event struct {
	Type string `json:"type"`
	File string `json:"file,omitempty"`
	*rules.Result
	Files    int    `json:"files,omitempty"`
	Rules    int    `json:"rules,omitempty"`
	Profile  string `json:"profile,omitempty"`
	ExitCode int    `json:"exit_code,omitempty"`
}

func eventFromResult(r rules.Result) Event {
	return Event{Type: "rule.result", File: r.File, Result: &r}
}
