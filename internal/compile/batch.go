package compile

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"variant-generator/internal/schema"
)

// ErrDuplicateLabel is matched by every *DuplicateLabelError.
var ErrDuplicateLabel = errors.New("duplicate record label")

// DuplicateLabelError reports a record whose label was already used by an
// earlier record of the same batch.
type DuplicateLabelError struct {
	Label      string
	Tag        string
	Index      int
	FirstIndex int
	FirstTag   string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("%s %q at records[%d] (tag %q): already defined by records[%d] (tag %q)",
		ErrDuplicateLabel, e.Label, e.Index, e.Tag, e.FirstIndex, e.FirstTag)
}

// Is makes errors.Is(err, ErrDuplicateLabel) hold.
func (e *DuplicateLabelError) Is(target error) bool {
	return target == ErrDuplicateLabel
}

// Result is the outcome of compiling one record of a batch.
type Result struct {
	// Index is the position of the record in the input.
	Index int
	// Variant is set on success.
	Variant *Variant
	// Err is set on failure.
	Err error
}

type options struct {
	workers int
}

// Option configures All.
type Option func(*options)

// WithWorkers bounds the number of records compiled at once.
// Values below one mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// All compiles records concurrently and returns one Result per record, in
// input order. Once ctx is done, records not yet started fail with ctx.Err().
func All(ctx context.Context, records []schema.Record, opts ...Option) []Result {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(records))
	first := make(map[string]int, len(records))

	for i, rec := range records {
		results[i].Index = i

		if j, ok := first[rec.Label]; ok {
			results[i].Err = &DuplicateLabelError{
				Label:      rec.Label,
				Tag:        rec.Tag,
				Index:      i,
				FirstIndex: j,
				FirstTag:   records[j].Tag,
			}

			continue
		}

		first[rec.Label] = i
	}

	// Failures stay in their own slot, so workers always return nil and the
	// group never cancels siblings.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range records {
		if results[i].Err != nil {
			continue
		}

		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			results[i].Variant, results[i].Err = Compile(records[i])

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// Variants returns the successful variants and a joined error of the
// failures, each prefixed with its record position.
func Variants(results []Result) ([]*Variant, error) {
	var (
		variants []*Variant
		errs     []error
	)

	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("records[%d]: %w", r.Index, r.Err))
			continue
		}

		variants = append(variants, r.Variant)
	}

	return variants, errors.Join(errs...)
}
