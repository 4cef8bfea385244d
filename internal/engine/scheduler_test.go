package engine

import (
	"context"
	"errors"
	"testing"

	"cppstyle/internal/cxx"
	"cppstyle/internal/rules"
	"cppstyle/internal/source"
)

// memSource serves file contents from a map.
type memSource struct {
	files map[string][]byte
	errs  map[string]error
}

func (m *memSource) Discover(ctx context.Context) ([]source.FileRef, error) {
	var refs []source.FileRef
	for path := range m.files {
		refs = append(refs, source.FileRef{Path: path})
	}
	return refs, nil
}

func (m *memSource) Read(ctx context.Context, ref source.FileRef) ([]byte, error) {
	if err := m.errs[ref.Path]; err != nil {
		return nil, err
	}
	content, ok := m.files[ref.Path]
	if !ok {
		return nil, errors.New("not found")
	}
	return content, nil
}

func planFor(t *testing.T, src *memSource, selected []rules.Rule) *CheckPlan {
	t.Helper()
	refs, err := src.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	plan := NewCheckPlan()
	for _, ref := range refs {
		if err := plan.AddFile(ref, selected); err != nil {
			t.Fatalf("AddFile() error = %v", err)
		}
	}
	return plan
}

func collect(t *testing.T, resCh <-chan FileExecutionResult, errCh <-chan error) ([]FileExecutionResult, error) {
	t.Helper()
	var results []FileExecutionResult
	for res := range resCh {
		results = append(results, res)
	}
	var last error
	for err := range errCh {
		if err != nil {
			last = err
		}
	}
	return results, last
}

func TestScheduler_OneResultPerFile(t *testing.T) {
	src := &memSource{files: map[string][]byte{
		"a.hpp": []byte("class Widget {};\n"),
		"b.hpp": []byte("class Gadget {};\n"),
		"c.cpp": []byte("int main() { return 0; }\n"),
	}}
	plan := planFor(t, src, nil)

	s, err := NewScheduler(src, 2)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	resCh, errCh := s.Execute(context.Background(), plan)
	results, schedErr := collect(t, resCh, errCh)
	if schedErr != nil {
		t.Fatalf("scheduler error = %v", schedErr)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, res := range results {
		if res.Source == nil {
			t.Errorf("file %s: expected extracted source, got ReadErr=%v ParseErr=%v", res.Ref.Path, res.ReadErr, res.ParseErr)
		}
	}
}

func TestScheduler_ReadErrorIsPerFile(t *testing.T) {
	src := &memSource{
		files: map[string][]byte{
			"good.hpp": []byte("class Widget {};\n"),
			"bad.hpp":  []byte("unused"),
		},
		errs: map[string]error{"bad.hpp": errors.New("permission denied")},
	}
	plan := planFor(t, src, nil)

	s, _ := NewScheduler(src, 1)
	resCh, errCh := s.Execute(context.Background(), plan)
	results, schedErr := collect(t, resCh, errCh)
	if schedErr != nil {
		t.Fatalf("scheduler error = %v", schedErr)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, res := range results {
		switch res.Ref.Path {
		case "bad.hpp":
			if res.ReadErr == nil {
				t.Error("expected ReadErr for bad.hpp")
			}
		case "good.hpp":
			if res.Source == nil {
				t.Error("expected source for good.hpp")
			}
		}
	}
}

func TestScheduler_ParseErrorIsPerFile(t *testing.T) {
	src := &memSource{files: map[string][]byte{
		"broken.hpp": []byte("class {{{{\n"),
		"good.hpp":   []byte("class Widget {};\n"),
	}}
	plan := planFor(t, src, nil)

	s, _ := NewScheduler(src, 2)
	resCh, errCh := s.Execute(context.Background(), plan)
	results, schedErr := collect(t, resCh, errCh)
	if schedErr != nil {
		t.Fatalf("scheduler error = %v", schedErr)
	}

	var sawParseErr, sawGood bool
	for _, res := range results {
		if res.Ref.Path == "broken.hpp" && res.ParseErr != nil {
			if !cxx.IsParseError(res.ParseErr) {
				t.Errorf("ParseErr should be a cxx.ParseError, got %v", res.ParseErr)
			}
			sawParseErr = true
		}
		if res.Ref.Path == "good.hpp" && res.Source != nil {
			sawGood = true
		}
	}
	if !sawParseErr {
		t.Error("expected a parse error for broken.hpp")
	}
	if !sawGood {
		t.Error("a broken file must not prevent other files from being processed")
	}
}

func TestScheduler_Cancellation(t *testing.T) {
	files := make(map[string][]byte)
	for i := 0; i < 50; i++ {
		files[string(rune('a'+i%26))+".hpp"] = []byte("class Widget {};\n")
	}
	src := &memSource{files: files}
	plan := planFor(t, src, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _ := NewScheduler(src, 2)
	resCh, errCh := s.Execute(ctx, plan)
	results, schedErr := collect(t, resCh, errCh)

	if len(results) == len(plan.FilePlans) && schedErr == nil {
		t.Error("expected early stop or an error after cancellation")
	}
}

func TestNewScheduler_Validation(t *testing.T) {
	if _, err := NewScheduler(nil, 1); err == nil {
		t.Error("expected error for nil source")
	}
	if _, err := NewScheduler(&memSource{}, 0); err == nil {
		t.Error("expected error for zero concurrency")
	}
}
