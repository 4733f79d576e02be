package query

const (
	DefaultMasterSection = "Buffet Service"
	DefaultExtrasSection = "Extras"
)

type Options struct {
	// Days lists the event days in display order.
	Days []string
	// MasterSection is the only section where turkey entries come first.
	MasterSection string
	// ExtrasSection is rendered apart from the regular tasks of each day.
	ExtrasSection string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Days:          []string{},
		MasterSection: DefaultMasterSection,
		ExtrasSection: DefaultExtrasSection,
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

func WithMasterSection(section string) OptionFunc {
	return func(opts *Options) {
		opts.MasterSection = section
	}
}

func WithExtrasSection(section string) OptionFunc {
	return func(opts *Options) {
		opts.ExtrasSection = section
	}
}
