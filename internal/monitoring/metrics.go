// Package monitoring exposes prometheus collectors for the log sink.
package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Purge trigger labels.
const (
	TriggerTimer  = "timer"
	TriggerManual = "manual"
	TriggerClear  = "clear"
)

var (
	appendCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loggy_entries_appended_total",
			Help: "Total entries appended to the store",
		},
	)
	purgedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loggy_entries_purged_total",
			Help: "Total entries removed, by trigger",
		},
		[]string{"trigger"},
	)
	passCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loggy_purge_passes_total",
			Help: "Total purge passes executed by the timer",
		},
	)
	sizeGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "loggy_store_entries",
			Help: "Current number of buffered entries",
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Observation
// helpers work whether or not Init ran; unregistered collectors just stay
// unscraped.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(appendCounter, purgedCounter, passCounter, sizeGauge)
	})
}

// ObserveAppend records one appended entry and the resulting size.
func ObserveAppend(size int) {
	appendCounter.Inc()
	sizeGauge.Set(float64(size))
}

// ObservePurge records removed entries for a trigger and the resulting size.
func ObservePurge(trigger string, removed, size int) {
	if removed > 0 {
		purgedCounter.WithLabelValues(trigger).Add(float64(removed))
	}
	if trigger == TriggerTimer {
		passCounter.Inc()
	}
	sizeGauge.Set(float64(size))
}
