package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "roster"

const (
	NameOperations = "operations_total"
	NamePositions  = "positions"
	NameTasks      = "tasks"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelState     = "state"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

const (
	StateFilled = "filled"
	StateOpen   = "open"
)

var Operations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameOperations,
		Help:      "Task operations by outcome",
		Namespace: Namespace,
	},
	[]string{LabelOperation, LabelOutcome},
)

var Positions = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name:      NamePositions,
		Help:      "Current positions",
		Namespace: Namespace,
	},
	[]string{LabelState},
)

var Tasks = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name:      NameTasks,
		Help:      "Current tasks",
		Namespace: Namespace,
	},
)
