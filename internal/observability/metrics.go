// Package observability exposes run-level metrics and a flattened view of the
// registered collectors.
package observability

import (
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var runCompletedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "fittracker",
	Subsystem: "run",
	Name:      "last_completed_timestamp_seconds",
	Help:      "Unix timestamp of the most recent run that processed every package.",
})

func init() {
	prometheus.MustRegister(runCompletedGauge)
}

// RecordRunCompleted updates the completion watermark gauge.
func RecordRunCompleted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	runCompletedGauge.Set(float64(ts.Unix()))
}

// Snapshot gathers metric families whose names start with prefix and flattens
// them into "name{label=value,...}" keys. Histograms report their sample count
// and sum under the _count and _sum suffixes.
func Snapshot(gatherer prometheus.Gatherer, prefix string) (map[string]float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := labelString(metric.GetLabel())
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				out[name+labels] = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[name+labels] = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				out[name+"_count"+labels] = float64(h.GetSampleCount())
				out[name+"_sum"+labels] = h.GetSampleSum()
			}
		}
	}
	return out, nil
}

// SortedKeys returns the snapshot keys in lexical order for stable logging.
func SortedKeys(snapshot map[string]float64) []string {
	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func labelString(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts, pair.GetName()+"="+pair.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
