package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"cppstyle/internal/config"
	"cppstyle/internal/output"
	"cppstyle/internal/profile"
	"cppstyle/internal/rules"
	"cppstyle/internal/source"
)

func exitCodeForRun(fatal, partial, violations bool) int {
	// Exit code contract:
	// 0 = clean run, no violations
	// 1 = violations detected
	// 2 = partial failure (some files could not be read or parsed)
	// 3 = fatal error (check did not run)
	if fatal {
		return 3
	}
	if partial {
		return 2
	}
	if violations {
		return 1
	}
	return 0
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.ConsoleFormat, cfg.Output.ConsoleFilterStatus)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Emit Sinks (additional structured streams)
	for _, emit := range cfg.Output.Emit {
		es, err := output.NewEmitSink(os.Stdout, emit)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(es); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Report Sink
	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

func applyRuleOptionsIfAny(cfg *config.Config) error {
	// applyRuleOptionsIfAny applies per-rule configuration supplied via repeated
	// --set flags.
	//
	// --set values are parsed as "ruleID.option=value" and routed to the matching
	// rule's Configure method (only rules that implement rules.ConfigurableRule).
	//
	// Example:
	//   cppstyle check src/ --set include-group-order.lexicographic=require

	if len(cfg.Rules.Set) == 0 {
		return nil
	}

	assignments, err := config.ParseRuleOptionAssignments(cfg.Rules.Set)
	if err != nil {
		return err
	}

	all := rules.List()
	byID := make(map[string]rules.Rule, len(all))
	for _, r := range all {
		byID[r.ID()] = r
	}

	for ruleID, opts := range assignments {
		r, ok := byID[ruleID]
		if !ok {
			return fmt.Errorf("unknown rule ID %q", ruleID)
		}
		cr, ok := r.(rules.ConfigurableRule)
		if !ok {
			return fmt.Errorf("rule %q does not support options", ruleID)
		}

		allowed := make(map[string]struct{})
		for _, opt := range cr.Options() {
			allowed[opt.Name] = struct{}{}
		}
		for name := range opts {
			if _, ok := allowed[name]; !ok {
				return fmt.Errorf("unknown option %q for rule %q", name, ruleID)
			}
		}

		if err := cr.Configure(opts); err != nil {
			return fmt.Errorf("configure rule %q: %w", ruleID, err)
		}
	}

	return nil
}

type Engine struct {
	// Source overrides file discovery; when nil it is resolved from the config.
	Source source.Source

	// schedulerExecute is a test seam for streaming execution.
	// If nil, Engine uses the real scheduler.
	schedulerExecute func(ctx context.Context, cfg *config.Config, plan *CheckPlan) (<-chan FileExecutionResult, <-chan error)
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) executePlanStream(ctx context.Context, cfg *config.Config, src source.Source, plan *CheckPlan) (<-chan FileExecutionResult, <-chan error) {
	if e.schedulerExecute != nil {
		return e.schedulerExecute(ctx, cfg, plan)
	}

	scheduler, err := NewScheduler(src, cfg.Runtime.Concurrency)
	if err != nil {
		resCh := make(chan FileExecutionResult)
		errCh := make(chan error, 1)
		close(resCh)
		errCh <- err
		close(errCh)
		return resCh, errCh
	}
	return scheduler.Execute(ctx, plan)
}

// evaluateStreamingResults receives streamed per-file execution results,
// runs every planned rule against successfully extracted files, and forwards
// results/events to the configured output sinks.
//
// A file that could not be read or parsed produces a single ERROR result and
// marks the run partial; it never aborts the remaining files.
func evaluateStreamingResults(ctx context.Context, cfg *config.Config, prof *profile.Profile, plan *CheckPlan, resCh <-chan FileExecutionResult, outMgr *output.Manager, cancel context.CancelFunc) (hasErrors, hasViolations bool) {
	for res := range resCh {
		fp := plan.FilePlans[res.FileID]
		if fp == nil {
			hasErrors = true
			continue
		}

		_ = outMgr.Write(output.Event{Type: "file.started", File: fp.Ref.Path})

		if res.ReadErr != nil || res.ParseErr != nil {
			err := res.ReadErr
			verb := "read"
			if err == nil {
				err = res.ParseErr
				verb = "parse"
			}
			_ = outMgr.Write(rules.Result{
				File:    fp.Ref.Path,
				RuleID:  "extract",
				Status:  rules.StatusError,
				Message: fmt.Sprintf("Failed to %s file: %v", verb, err),
			})
			hasErrors = true
			_ = outMgr.Write(output.Event{Type: "file.finished", File: fp.Ref.Path})
			continue
		}

		fileHasViolations := false
		for _, rule := range fp.Rules {
			ruleResults, err := rule.Evaluate(ctx, res.Source, prof)
			if err != nil {
				_ = outMgr.Write(rules.Result{
					File:    fp.Ref.Path,
					RuleID:  rule.ID(),
					Status:  rules.StatusError,
					Message: fmt.Sprintf("Evaluation failed: %v", err),
				})
				hasErrors = true
				continue
			}

			for _, rr := range ruleResults {
				// Backfill identifiers so output stays consistent and well-formed.
				// Rules care about status + position + message; the engine already
				// knows the file and rule ID, so stamp them here to keep sinks happy.
				if rr.File == "" {
					rr.File = fp.Ref.Path
				}
				if rr.RuleID == "" {
					rr.RuleID = rule.ID()
				}

				switch rr.Status {
				case rules.StatusFail:
					hasViolations = true
					fileHasViolations = true
				case rules.StatusError:
					hasErrors = true
				}

				_ = outMgr.Write(rr)
			}
		}

		_ = outMgr.Write(output.Event{Type: "file.finished", File: fp.Ref.Path})

		if fileHasViolations && cfg.Runtime.FailFast && cancel != nil {
			cancel()
			return hasErrors, hasViolations
		}
	}
	return hasErrors, hasViolations
}

func (e *Engine) discoverFiles(ctx context.Context, cfg *config.Config, src source.Source) ([]source.FileRef, bool) {
	if !cfg.Output.NoConsole {
		fmt.Fprintln(os.Stderr, "Discovering files...")
	}
	refs, err := src.Discover(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discovering files: %v\n", err)
		return nil, false
	}
	return refs, true
}

func maybeDryRun(cfg *config.Config, refs []source.FileRef) (int, bool) {
	if !cfg.Targeting.DryRun {
		return 0, false
	}

	paths := make([]string, 0, len(refs))
	for _, r := range refs {
		paths = append(paths, r.Path)
	}
	sort.Strings(paths)
	fmt.Println("Resolved files:")
	for _, p := range paths {
		fmt.Println(p)
	}
	return 0, true
}

func resolveAndConfigureRules(cfg *config.Config) ([]rules.Rule, bool) {
	if !cfg.Output.NoConsole {
		fmt.Fprintln(os.Stderr, "Resolving rules...")
	}
	selectedRules, err := rules.Resolve(cfg.Rules.Selector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving rules: %v\n", err)
		return nil, false
	}

	if err := applyRuleOptionsIfAny(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring rules: %v\n", err)
		return nil, false
	}

	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Selected %d rules.\n", len(selectedRules))
	}
	return selectedRules, true
}

func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	// Profile problems are configuration errors: fail before any file is touched.
	prof, err := profile.Resolve(cfg.Profile.Name, cfg.Profile.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving style profile: %v\n", err)
		return exitCodeForRun(true, false, false)
	}

	src := e.Source
	if src == nil {
		src, err = ResolveSource(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving source: %v\n", err)
			return exitCodeForRun(true, false, false)
		}
	}

	refs, ok := e.discoverFiles(ctx, cfg, src)
	if !ok {
		return exitCodeForRun(true, false, false)
	}

	refs = FilterFiles(refs, cfg)
	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Found %d files.\n", len(refs))
	}

	if code, ok := maybeDryRun(cfg, refs); ok {
		return code
	}

	selectedRules, ok := resolveAndConfigureRules(cfg)
	if !ok {
		return exitCodeForRun(true, false, false)
	}

	plan := NewCheckPlan()
	for _, ref := range refs {
		if err := plan.AddFile(ref, selectedRules); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding file %s to plan: %v\n", ref.Path, err)
			return exitCodeForRun(true, false, false)
		}
	}

	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
		return exitCodeForRun(true, false, false)
	}
	defer outMgr.Close()

	_ = outMgr.Write(output.Event{
		Type:    "run.started",
		Files:   len(plan.FilePlans),
		Rules:   len(selectedRules),
		Profile: prof.Name,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	resCh, errCh := e.executePlanStream(runCtx, cfg, src, plan)

	hasErrors, hasViolations := evaluateStreamingResults(runCtx, cfg, prof, plan, resCh, outMgr, cancel)

	var schedErr error
	// Drain scheduler errors; we only need to know whether any fatal error occurred (keep one non-nil error).
	for err := range errCh {
		if err != nil {
			schedErr = err
		}
	}
	// Fail-fast cancels the scheduler on purpose; that cancellation is not fatal.
	if errors.Is(schedErr, context.Canceled) && hasViolations && cfg.Runtime.FailFast {
		schedErr = nil
	}

	fatal := schedErr != nil
	code := exitCodeForRun(fatal, hasErrors, hasViolations)
	_ = outMgr.Write(output.Event{Type: "run.finished", ExitCode: code})
	return code
}
