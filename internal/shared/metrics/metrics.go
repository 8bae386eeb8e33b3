package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	extractionsTotal       atomic.Uint64
	extractionsFailedTotal atomic.Uint64
	matchesTotal           atomic.Uint64
	matchesFailedTotal     atomic.Uint64
	insightTotal           atomic.Uint64
	insightFailedTotal     atomic.Uint64

	insightDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncExtraction increments the extraction counter.
func IncExtraction() {
	extractionsTotal.Add(1)
}

// IncExtractionFailed increments the failed-extraction counter.
func IncExtractionFailed() {
	extractionsFailedTotal.Add(1)
}

// IncMatch increments the match counter.
func IncMatch() {
	matchesTotal.Add(1)
}

// IncMatchFailed increments the failed-match counter.
func IncMatchFailed() {
	matchesFailedTotal.Add(1)
}

// IncInsight increments the AI analysis counter.
func IncInsight() {
	insightTotal.Add(1)
}

// IncInsightFailed increments the failed AI analysis counter.
func IncInsightFailed() {
	insightFailedTotal.Add(1)
}

// ObserveInsightDurationMs records an AI analysis duration in milliseconds.
func ObserveInsightDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	insightDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "extractions_total", "Total skill extractions", extractionsTotal.Load())
	writeCounter(&buf, "extractions_failed_total", "Total skill extractions failed", extractionsFailedTotal.Load())
	writeCounter(&buf, "matches_total", "Total match computations", matchesTotal.Load())
	writeCounter(&buf, "matches_failed_total", "Total match computations failed", matchesFailedTotal.Load())
	writeCounter(&buf, "insight_total", "Total AI analyses", insightTotal.Load())
	writeCounter(&buf, "insight_failed_total", "Total AI analyses failed", insightFailedTotal.Load())
	writeHistogram(&buf, "insight_duration_ms", "AI analysis duration in milliseconds", insightDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}
