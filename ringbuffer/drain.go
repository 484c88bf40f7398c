package ringbuffer

import (
	"context"
	"fmt"
	"time"

	"github.com/joeycumines/logiface"
)

type (
	// Source models the consumer side of a ring buffer, as used by Drain.
	// It is implemented by Simple, and by Stereo.Frames.
	Source[E any] interface {
		PopAll() []E
		Subscribe()
		Unsubscribe()
	}

	// DrainConfig models optional configuration, for Drain.
	DrainConfig struct {
		// Logger receives debug events on start and stop, and warnings for
		// handler errors, if ContinueOnError is set. Optional.
		Logger *logiface.Logger[logiface.Event]

		// PollInterval is the time to wait after finding the source empty.
		// **Defaults to 1ms, if 0, or DrainConfig is nil.**
		PollInterval time.Duration

		// MaxBatch restricts the number of values per handler call, if
		// positive. By default, everything available is passed at once.
		MaxBatch int

		// ContinueOnError causes handler errors to be logged, instead of
		// stopping Drain.
		ContinueOnError bool
	}

	// HandlerError is returned by Drain when the handler fails, and
	// ContinueOnError is not set. It wraps the handler's error.
	HandlerError[E any] struct {
		// Err is the error returned by the handler.
		Err error

		// Remaining are the values popped from the source, but not yet
		// passed to the handler, in order. They are no longer in the source.
		Remaining []E
	}

	drainer[E any] struct {
		logger          *logiface.Logger[logiface.Event]
		handler         func(batch []E) error
		maxBatch        int
		continueOnError bool
	}
)

// Drain consumes src until ctx is canceled, passing each non-empty batch to
// handler, in order. The cfg parameter is optional, and may be nil, in which
// case the documented defaults will be used.
//
// The source is subscribed for the duration of the call. Drain polls, sleeping
// for the PollInterval whenever the source is empty, and so it never blocks
// the producer. After ctx is canceled, a final pass is made, and ctx.Err() is
// returned. Errors from handler cause Drain to return a *HandlerError[E],
// unless ContinueOnError is set. Values already popped, but not yet passed to
// handler, e.g. the chunks after the failed one, if MaxBatch split the batch,
// are returned as HandlerError.Remaining.
//
// Drain must be the only consumer of src. Providing a nil ctx, src, or
// handler will cause a panic.
func Drain[E any](ctx context.Context, cfg *DrainConfig, src Source[E], handler func(batch []E) error) error {
	if ctx == nil {
		panic(`ringbuffer: nil context`)
	}
	if src == nil {
		panic(`ringbuffer: nil source`)
	}
	if handler == nil {
		panic(`ringbuffer: nil handler`)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	d := drainer[E]{handler: handler}
	pollInterval := time.Millisecond
	if cfg != nil {
		d.logger = cfg.Logger
		d.maxBatch = cfg.MaxBatch
		d.continueOnError = cfg.ContinueOnError
		if cfg.PollInterval > 0 {
			pollInterval = cfg.PollInterval
		}
	}

	src.Subscribe()
	defer src.Unsubscribe()

	d.logger.Debug().
		Dur(`poll_interval`, pollInterval).
		Log(`drain started`)
	defer func() { d.logger.Debug().Log(`drain stopped`) }()

	timer := time.NewTimer(pollInterval)
	defer timer.Stop()

	for {
		// checked first, so the last pass starts after cancellation
		done := ctx.Err()

		n, err := d.dispatch(src.PopAll())
		if err != nil {
			return err
		}

		if done != nil {
			return done
		}

		if n != 0 {
			continue
		}

		timer.Reset(pollInterval)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
}

func (x *drainer[E]) dispatch(batch []E) (n int, err error) {
	n = len(batch)
	for len(batch) != 0 {
		chunk := batch
		if x.maxBatch > 0 && len(chunk) > x.maxBatch {
			chunk = chunk[:x.maxBatch]
		}
		batch = batch[len(chunk):]

		if err := x.handler(chunk); err != nil {
			if !x.continueOnError {
				return n, &HandlerError[E]{Err: err, Remaining: batch}
			}
			x.logger.Warning().
				Err(err).
				Int(`size`, len(chunk)).
				Log(`drain handler error`)
		}
	}
	return n, nil
}

func (x *HandlerError[E]) Error() string {
	return fmt.Sprintf(`ringbuffer: drain: %v`, x.Err)
}

func (x *HandlerError[E]) Unwrap() error { return x.Err }
