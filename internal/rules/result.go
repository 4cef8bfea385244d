package rules

type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

type Result struct {
	RuleID string `json:"rule_id"`
	File   string `json:"file"`
	Status Status `json:"status"`
	// Line and Column locate the offending identifier or include
	// (1-based). Zero for file-level results.
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message,omitempty"`
	// Identifier is the offending name, when the result concerns one.
	Identifier string `json:"identifier,omitempty"`
	// Category is the identifier's classification (e.g. ClassName).
	Category string `json:"category,omitempty"`
}
