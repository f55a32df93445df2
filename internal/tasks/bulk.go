package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/soundctl/mak/internal/library"
	"github.com/soundctl/mak/internal/models"
	"golang.org/x/time/rate"
)

// BulkRetagOpts contains configuration for bulk tag writes.
type BulkRetagOpts struct {
	NumWorkers int     // Concurrent workers (default: 5, cap: 10)
	RateLimit  float64 // Files dispatched per second (default: 20)
}

type retagJob struct {
	path string
	name string
}

// BulkRetag applies one edit across every track in the album using a worker
// pool, pacing job dispatch so a large album does not saturate disk I/O.
// Per-file failures are collected; the operation only errors outright when
// the context is cancelled.
func (e *LibraryEngine) BulkRetag(
	ctx context.Context,
	progress chan<- ProgressUpdate,
	album *library.Album,
	edit models.TagEdit,
	opts BulkRetagOpts,
) (*BulkRetagResult, error) {
	if edit.IsEmpty() {
		return nil, fmt.Errorf("bulk retag requires at least one field")
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 20.0
	}

	names := album.TrackNames()
	result := &BulkRetagResult{
		TotalFiles: len(names),
		Results:    make([]RetagResult, 0, len(names)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan retagJob, len(names))
	results := make(chan RetagResult, len(names))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.retagWorker(ctx, &wg, jobs, results, edit)
	}

	go func() {
		defer close(jobs)
		for _, name := range names {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := limiter.Wait(ctx); err != nil {
				return
			}

			track, err := album.Track(name)
			if err != nil {
				results <- RetagResult{Path: name, Error: err}
				continue
			}
			jobs <- retagJob{path: track.Path, name: name}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessCount++
			e.sendProgress(progress, writingTagsUpdate(completed, len(names), res.Path))
		} else {
			result.FailedCount++
			e.sendProgress(progress, writeFailedUpdate(completed, len(names), res.Path, res.Error))
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// retagWorker is a worker goroutine that applies edits from the jobs channel.
func (e *LibraryEngine) retagWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan retagJob,
	results chan<- RetagResult,
	edit models.TagEdit,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			results <- RetagResult{Path: job.path, Error: ctx.Err()}
			continue
		default:
		}

		if err := e.writer.Write(job.path, edit); err != nil {
			results <- RetagResult{Path: job.path, Error: err}
			continue
		}
		results <- RetagResult{Path: job.path, Success: true}
	}
}
