// Package workers runs fixed-size work lists on a bounded number of
// goroutines.
//
// Jobs are addressed by index. The pool makes no promise about the order in
// which jobs start or finish; callers that need ordered output write each
// result into a pre-sized slice at the job's index.
//
// Example:
//
//	out := make([][]byte, len(chunks))
//	err := pool.Run(ctx, len(chunks), func(ctx context.Context, i int) error {
//	    res, err := process(chunks[i])
//	    out[i] = res
//	    return err
//	})
package workers

import "context"

// Job processes item i of a work list.
type Job func(ctx context.Context, i int) error

// Runner executes a work list of n jobs and returns the first error.
type Runner interface {
	Run(ctx context.Context, n int, job Job) error
}
