package engine

import (
	"fmt"

	"cppstyle/internal/rules"
	"cppstyle/internal/source"
)

type CheckPlan struct {
	FilePlans map[int]*FilePlan
}

type FilePlan struct {
	ID    int
	Ref   source.FileRef
	Rules []rules.Rule
}

func NewCheckPlan() *CheckPlan {
	return &CheckPlan{
		FilePlans: make(map[int]*FilePlan),
	}
}

// AddFile registers a file with the plan. File IDs are assigned in insertion
// order so discovery order determines scheduling order.
func (p *CheckPlan) AddFile(ref source.FileRef, selectedRules []rules.Rule) error {
	if p == nil || p.FilePlans == nil {
		return fmt.Errorf("check plan is not initialized; use NewCheckPlan")
	}
	if ref.Path == "" {
		return fmt.Errorf("file ref has empty path")
	}
	id := len(p.FilePlans)
	p.FilePlans[id] = &FilePlan{
		ID:    id,
		Ref:   ref,
		Rules: selectedRules,
	}
	return nil
}
