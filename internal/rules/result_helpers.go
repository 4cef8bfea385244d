package rules

import "cppstyle/internal/cxx"

func NewResult(file, ruleID string, status Status, message string) Result {
	res := Result{
		Status: status,
		File:   file,
		RuleID: ruleID,
	}
	if message != "" {
		res.Message = message
	}
	return res
}

func PassResult(file, ruleID string) Result {
	return NewResult(file, ruleID, StatusPass, "")
}

func SkippedResult(file, ruleID, message string) Result {
	return NewResult(file, ruleID, StatusSkipped, message)
}

func ErrorResult(file, ruleID, message string) Result {
	return NewResult(file, ruleID, StatusError, message)
}

// Violation builds a FAIL result anchored at an identifier.
func Violation(file, ruleID string, id cxx.Identifier, message string) Result {
	res := NewResult(file, ruleID, StatusFail, message)
	res.Line = id.Line
	res.Column = id.Column
	res.Identifier = id.Name
	res.Category = string(id.Category)
	return res
}

// IncludeViolation builds a FAIL result anchored at an include directive.
func IncludeViolation(file, ruleID string, inc cxx.Include, message string) Result {
	res := NewResult(file, ruleID, StatusFail, message)
	res.Line = inc.Line
	res.Identifier = inc.Path
	return res
}
