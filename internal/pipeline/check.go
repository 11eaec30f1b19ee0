package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"portlang/internal/driver"
)

// CheckRequest configures a multi-file check run.
type CheckRequest struct {
	Dir            string
	MaxDiagnostics int
	Cache          *driver.DiskCache // nil отключает кеш
	Progress       ProgressSink      // nil отключает события
}

// CheckResult pairs one source file with its compile outcome.
type CheckResult struct {
	Path    string
	Result  *driver.CompileResult
	Cached  bool
	Elapsed time.Duration
}

// Check compiles every portfolio source under req.Dir in parallel, emitting
// progress events as files move through the run. Results come back in the
// deterministic directory order regardless of completion order.
func Check(ctx context.Context, req CheckRequest) ([]CheckResult, error) {
	files, err := driver.ListSourceFiles(req.Dir)
	if err != nil {
		return nil, err
	}

	emitAll(req.Progress, files, StatusQueued)

	results := make([]CheckResult, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			emit(req.Progress, Event{File: path, Stage: StageLex, Status: StatusWorking})
			began := time.Now()

			if req.Cache != nil {
				if res, ok := req.Cache.Lookup(path, req.MaxDiagnostics); ok {
					results[i] = CheckResult{Path: path, Result: res, Cached: true, Elapsed: time.Since(began)}
					emit(req.Progress, Event{File: path, Status: StatusCached, Elapsed: results[i].Elapsed})
					return nil
				}
			}

			res, err := driver.CompileFile(path, req.MaxDiagnostics)
			if err != nil {
				emit(req.Progress, Event{File: path, Status: StatusError, Err: err})
				return fmt.Errorf("failed to compile %q: %w", path, err)
			}
			if req.Cache != nil {
				// Ошибка записи кеша не портит результат компиляции.
				_ = req.Cache.Store(path, res)
			}

			results[i] = CheckResult{Path: path, Result: res, Elapsed: time.Since(began)}

			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusError
			}
			emit(req.Progress, Event{File: path, Stage: StageValidate, Status: status, Elapsed: results[i].Elapsed})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}

func emitAll(sink ProgressSink, files []string, status Status) {
	if sink == nil {
		return
	}
	for _, f := range files {
		sink.OnEvent(Event{File: f, Status: status})
	}
}
