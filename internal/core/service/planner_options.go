package service

import (
	"time"

	"github.com/bornholm/roster/internal/core/query"
)

type PlannerOptions struct {
	Days          []string
	MasterSection string
	ExtrasSection string
	Clock         func() time.Time
}

type PlannerOptionFunc func(opts *PlannerOptions)

func NewPlannerOptions(funcs ...PlannerOptionFunc) *PlannerOptions {
	opts := &PlannerOptions{
		Days:          []string{},
		MasterSection: query.DefaultMasterSection,
		ExtrasSection: query.DefaultExtrasSection,
		Clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithPlannerDays(days ...string) PlannerOptionFunc {
	return func(opts *PlannerOptions) {
		opts.Days = days
	}
}

func WithPlannerMasterSection(section string) PlannerOptionFunc {
	return func(opts *PlannerOptions) {
		opts.MasterSection = section
	}
}

func WithPlannerExtrasSection(section string) PlannerOptionFunc {
	return func(opts *PlannerOptions) {
		opts.ExtrasSection = section
	}
}

func WithPlannerClock(clock func() time.Time) PlannerOptionFunc {
	return func(opts *PlannerOptions) {
		opts.Clock = clock
	}
}
