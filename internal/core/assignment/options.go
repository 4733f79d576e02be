package assignment

import "time"

type Options struct {
	// Days restricts the days a task can be created on. Empty means any day.
	Days  []string
	Clock func() time.Time
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Days: []string{},
		Clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithDays(days ...string) OptionFunc {
	return func(opts *Options) {
		opts.Days = days
	}
}

func WithClock(clock func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Clock = clock
	}
}
