package store

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore wraps all store methods to instrument the underlying calls.
func InstrumentStore(s Store) Store { return &metrics{s} }

var (
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the store.",
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Store calls that returned an error other than not found.",
		},
		[]string{"method"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

func countError(method string, err error) {
	if err != nil && err != ErrNotFound {
		storeErrors.WithLabelValues(method).Inc()
	}
}

func init() {
	prometheus.MustRegister(storeCalls, storeErrors)
}

type metrics struct{ s Store }

func (m *metrics) LoadBestScore(c context.Context) (int, error) {
	defer instrument("LoadBestScore")()
	score, err := m.s.LoadBestScore(c)
	countError("LoadBestScore", err)
	return score, err
}

func (m *metrics) SaveBestScore(c context.Context, score int) error {
	defer instrument("SaveBestScore")()
	err := m.s.SaveBestScore(c, score)
	countError("SaveBestScore", err)
	return err
}

// Close closes the wrapped store if it holds resources.
func (m *metrics) Close() error {
	if c, ok := m.s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
