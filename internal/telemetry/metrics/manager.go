package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterWorkoutsAdded           *prometheus.CounterVec
	CounterValidationFailures      prometheus.Counter
	CounterPersistFailures         prometheus.Counter
	CounterSnapshotRestoreFailures prometheus.Counter
	CounterLocationFailures        prometheus.Counter
	CounterEntryActivations        *prometheus.CounterVec
	CounterHandlerPanics           prometheus.Counter

	// gauges
	GaugeWorkoutsStored prometheus.Gauge

	// histograms
	HistPersistDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("mapty", "test_app", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("mapty", "test_app", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterWorkoutsAdded := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_added",
		Help:      "The total number of workouts added, by type",
	}, []string{"type"})
	counterValidationFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "validation_failures",
		Help:      "The total number of rejected workout form submissions",
	})
	counterPersistFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persist_failures",
		Help:      "The total number of failed workout snapshot writes",
	})
	counterSnapshotRestoreFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "snapshot_restore_failures",
		Help:      "The total number of unreadable or corrupt snapshots found on startup",
	})
	counterLocationFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "location_failures",
		Help:      "The total number of failed geolocation requests",
	})
	counterEntryActivations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "entry_activations",
		Help:      "The total number of list entry activations, by outcome",
	}, []string{"outcome"})
	counterHandlerPanics := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handler_panics",
		Help:      "The total number of recovered panics in HTTP handlers",
	})

	gaugeWorkoutsStored := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_stored",
		Help:      "Current number of workouts in the store",
	})

	histPersistDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "persist_duration_seconds",
		Help:      "Duration of a single workouts snapshot write in seconds",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	})

	return &Manager{
		CounterWorkoutsAdded:           counterWorkoutsAdded,
		CounterValidationFailures:      counterValidationFailures,
		CounterPersistFailures:         counterPersistFailures,
		CounterSnapshotRestoreFailures: counterSnapshotRestoreFailures,
		CounterLocationFailures:        counterLocationFailures,
		CounterEntryActivations:        counterEntryActivations,
		CounterHandlerPanics:           counterHandlerPanics,
		GaugeWorkoutsStored:            gaugeWorkoutsStored,
		HistPersistDuration:            histPersistDuration,
	}
}
