package output

import (
	"errors"
	"fmt"
)

// Sink receives rules.Result and Event values during a run. Implementations
// must tolerate values they do not care about.
type Sink interface {
	Write(v any) error
	Close() error
}

// Manager fans every written value out to all registered sinks. A failing
// sink never prevents the others from receiving the value.
type Manager struct {
	sinks []Sink
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) AddSink(s Sink) error {
	if m == nil {
		return errors.New("output manager is nil")
	}
	if s == nil {
		return errors.New("sink must not be nil")
	}
	m.sinks = append(m.sinks, s)
	return nil
}

func (m *Manager) Write(v any) error {
	if m == nil {
		return errors.New("output manager is nil")
	}
	return m.each("write", func(s Sink) error { return s.Write(v) })
}

func (m *Manager) Close() error {
	if m == nil {
		return errors.New("output manager is nil")
	}
	return m.each("close", func(s Sink) error { return s.Close() })
}

func (m *Manager) each(verb string, op func(Sink) error) error {
	var errs []error
	for _, s := range m.sinks {
		if err := op(s); err != nil {
			errs = append(errs, fmt.Errorf("%s %T: %w", verb, s, err))
		}
	}
	return errors.Join(errs...)
}
