package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"cppstyle/internal/cxx"
	"cppstyle/internal/source"
)

type Scheduler struct {
	src         source.Source
	concurrency int
}

func NewScheduler(src source.Source, concurrency int) (*Scheduler, error) {
	if src == nil {
		return nil, errors.New("source is nil")
	}
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be >= 1, got %d", concurrency)
	}
	return &Scheduler{src: src, concurrency: concurrency}, nil
}

// Execute streams per-file read + extraction results.
//
// Channel semantics:
//   - In the normal (non-canceled) case, exactly one FileExecutionResult is sent per file.
//   - On context cancellation, the scheduler stops promptly; it may emit fewer than N results.
//   - The results channel and error channel are both closed reliably.
//   - The error channel is used for fatal errors / cancellation signals; per-file
//     read and parse failures are recorded on the FileExecutionResult.
func (s *Scheduler) Execute(ctx context.Context, plan *CheckPlan) (<-chan FileExecutionResult, <-chan error) {
	resultsCh := make(chan FileExecutionResult)
	errCh := make(chan error, 1)

	go func() {
		defer close(resultsCh)
		defer close(errCh)

		trySendErr := func(err error) {
			if err == nil {
				return
			}
			select {
			case errCh <- err:
			default:
			}
		}

		if ctx == nil {
			trySendErr(errors.New("context is nil"))
			return
		}
		if plan == nil || plan.FilePlans == nil {
			trySendErr(errors.New("check plan is not initialized; use NewCheckPlan"))
			return
		}
		if s == nil || s.src == nil {
			trySendErr(errors.New("scheduler source is nil"))
			return
		}
		if s.concurrency <= 0 {
			trySendErr(fmt.Errorf("scheduler concurrency must be >= 1, got %d", s.concurrency))
			return
		}

		fileIDs := make([]int, 0, len(plan.FilePlans))
		for id := range plan.FilePlans {
			fileIDs = append(fileIDs, id)
		}
		sort.Ints(fileIDs)

		// Tree-sitter parsers are not safe for concurrent use, so workers
		// check extractors out of a pool sized to the concurrency limit.
		extractors := make(chan *cxx.Extractor, s.concurrency)
		for i := 0; i < s.concurrency; i++ {
			extractors <- cxx.NewExtractor()
		}

		g, runCtx := errgroup.WithContext(ctx)
		g.SetLimit(s.concurrency)

		for _, fileID := range fileIDs {
			if runCtx.Err() != nil {
				break
			}
			fp := plan.FilePlans[fileID]
			if fp == nil {
				trySendErr(errors.New("nil file plan"))
				return
			}

			g.Go(func() error {
				res := FileExecutionResult{FileID: fp.ID, Ref: fp.Ref}

				content, err := s.src.Read(runCtx, fp.Ref)
				if err != nil {
					if runCtx.Err() != nil {
						return runCtx.Err()
					}
					res.ReadErr = err
				} else {
					ex := <-extractors
					sf, parseErr := ex.Extract(runCtx, fp.Ref.Path, content)
					extractors <- ex
					if parseErr != nil {
						res.ParseErr = parseErr
					} else {
						res.Source = sf
					}
				}

				select {
				case resultsCh <- res:
					return nil
				case <-runCtx.Done():
					return runCtx.Err()
				}
			})
		}

		if err := g.Wait(); err != nil {
			trySendErr(err)
			return
		}
		trySendErr(ctx.Err())
	}()

	return resultsCh, errCh
}
