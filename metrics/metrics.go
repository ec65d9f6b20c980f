// Package metrics wraps a *ggtr.FileSystem with Prometheus
// instrumentation. It changes nothing about container semantics — it
// forwards every call unchanged and records counters/histograms on the
// way.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/GRGSIBERIA/ggtr"
)

var (
	opsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ggtr_ops_total",
			Help: "Total number of container operations, by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	bytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ggtr_bytes_total",
			Help: "Total bytes transferred, by operation and direction.",
		},
		[]string{"op", "direction"},
	)

	opDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ggtr_op_duration_seconds",
			Help:    "Duration of container operations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(opsTotal)
	prometheus.MustRegister(bytesTotal)
	prometheus.MustRegister(opDuration)
}

// Instrumented wraps a *ggtr.FileSystem, recording metrics for every
// operation it forwards.
type Instrumented struct {
	fs *ggtr.FileSystem
}

// New wraps fs with instrumentation.
func New(fs *ggtr.FileSystem) *Instrumented {
	return &Instrumented{fs: fs}
}

func observe(op string, start time.Time, err error) {
	opDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	opsTotal.WithLabelValues(op, outcome).Inc()
}

// DBPath returns the wrapped handle's current container path.
func (i *Instrumented) DBPath() string {
	return i.fs.DBPath()
}

// Insert forwards to FileSystem.Insert, recording op count, duration,
// and bytes written.
func (i *Instrumented) Insert(data []byte) (ggtr.FileInfo, error) {
	start := time.Now()
	info, err := i.fs.Insert(data)
	observe("insert", start, err)
	if err == nil {
		bytesTotal.WithLabelValues("insert", "written").Add(float64(len(data)))
	}
	return info, err
}

// InsertMany forwards to FileSystem.InsertMany, recording op count,
// duration, and total bytes written across the batch.
func (i *Instrumented) InsertMany(blobs [][]byte) ([]ggtr.FileInfo, error) {
	start := time.Now()
	infos, err := i.fs.InsertMany(blobs)
	observe("insert_many", start, err)
	if err == nil {
		var total float64
		for _, b := range blobs {
			total += float64(len(b))
		}
		bytesTotal.WithLabelValues("insert_many", "written").Add(total)
	}
	return infos, err
}

// Query forwards to FileSystem.Query, recording op count, duration, and
// bytes read.
func (i *Instrumented) Query(info ggtr.FileInfo) (ggtr.Blob, error) {
	start := time.Now()
	blob, err := i.fs.Query(info)
	observe("query", start, err)
	if err == nil {
		bytesTotal.WithLabelValues("query", "read").Add(float64(len(blob.Data)))
	}
	return blob, err
}

// QueryMany forwards to FileSystem.QueryMany, recording op count,
// duration, and total bytes read across the batch.
func (i *Instrumented) QueryMany(infos []ggtr.FileInfo) (*ggtr.BlobList, error) {
	start := time.Now()
	list, err := i.fs.QueryMany(infos)
	observe("query_many", start, err)
	if err == nil {
		var total float64
		for _, info := range infos {
			total += float64(info.Size)
		}
		bytesTotal.WithLabelValues("query_many", "read").Add(total)
	}
	return list, err
}

// MoveDatabase forwards to FileSystem.MoveDatabase, recording op count
// and duration.
func (i *Instrumented) MoveDatabase(toPath string) error {
	start := time.Now()
	err := i.fs.MoveDatabase(toPath)
	observe("move", start, err)
	return err
}
