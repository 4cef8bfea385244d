package output

import (
	"errors"
	"testing"

	"cppstyle/internal/rules"
)

type recordingSink struct {
	written []any
	closed  bool
	wErr    error
	cErr    error
}

func (s *recordingSink) Write(v any) error {
	if s.wErr != nil {
		return s.wErr
	}
	s.written = append(s.written, v)
	return nil
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.cErr
}

func TestManager_FanOut(t *testing.T) {
	m := NewManager()
	a := &recordingSink{}
	b := &recordingSink{}
	if err := m.AddSink(a); err != nil {
		t.Fatalf("AddSink() error = %v", err)
	}
	if err := m.AddSink(b); err != nil {
		t.Fatalf("AddSink() error = %v", err)
	}

	r := rules.Result{Status: rules.StatusFail, File: "a.hpp", RuleID: "r1"}
	if err := m.Write(r); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(a.written) != 1 || len(b.written) != 1 {
		t.Errorf("expected both sinks to receive the result, got %d and %d", len(a.written), len(b.written))
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !a.closed || !b.closed {
		t.Error("expected both sinks to be closed")
	}
}

func TestManager_WriteErrorDoesNotSkipOtherSinks(t *testing.T) {
	m := NewManager()
	bad := &recordingSink{wErr: errors.New("boom")}
	good := &recordingSink{}
	_ = m.AddSink(bad)
	_ = m.AddSink(good)

	err := m.Write(rules.Result{Status: rules.StatusPass, File: "a.hpp", RuleID: "r1"})
	if err == nil {
		t.Fatal("expected error from failing sink")
	}
	if len(good.written) != 1 {
		t.Errorf("healthy sink should still receive writes, got %d", len(good.written))
	}
}

func TestManager_AddNilSink(t *testing.T) {
	m := NewManager()
	if err := m.AddSink(nil); err == nil {
		t.Error("expected error adding nil sink")
	}
}
