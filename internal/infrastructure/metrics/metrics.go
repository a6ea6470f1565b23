package metrics

import (
	"cl-interface/internal/domain/constants"
	"cl-interface/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the metrics of a single module invocation. The module is a
// short-lived process, so metrics live in a private registry and are flushed
// to a node exporter textfile on exit instead of being scraped.
type Recorder struct {
	registry *prometheus.Registry

	// 분류 관련 메트릭
	Classifications    *prometheus.CounterVec
	AddressesAssigned  prometheus.Counter
	ProcessingDuration *prometheus.HistogramVec

	// 에러 메트릭
	ErrorsTotal *prometheus.CounterVec

	// 모듈 정보
	ModuleInfo *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its own registry
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		Classifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "classifications_total",
				Help:      "Total number of interface requests classified",
			},
			[]string{"iface_type"}, // bridge, bond, loopback, mgmt, swp
		),
		AddressesAssigned: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "addresses_assigned_total",
				Help:      "Total number of IPv4 addresses attached to assembled configurations",
			},
		),
		ProcessingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "processing_duration_seconds",
				Help:      "Time spent classifying and assembling an interface request",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"iface_type"},
		),
		ErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "errors_total",
				Help:      "Total number of failed invocations",
			},
			[]string{"error_type"}, // validation, conflict, system, unclassifiable_interface
		),
		ModuleInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: constants.MetricsNamespace,
				Name:      "module_info",
				Help:      "Module information",
			},
			[]string{"version"},
		),
	}
}

// RecordClassification은 분류 성공과 처리 시간을 기록합니다
func (r *Recorder) RecordClassification(ifaceType entities.InterfaceType, addressCount int, duration float64) {
	r.Classifications.WithLabelValues(ifaceType.String()).Inc()
	r.ProcessingDuration.WithLabelValues(ifaceType.String()).Observe(duration)
	if addressCount > 0 {
		r.AddressesAssigned.Add(float64(addressCount))
	}
}

// RecordError는 에러 발생을 기록합니다
func (r *Recorder) RecordError(errorType string) {
	r.ErrorsTotal.WithLabelValues(errorType).Inc()
}

// SetModuleInfo는 모듈 정보를 설정합니다
func (r *Recorder) SetModuleInfo(version string) {
	r.ModuleInfo.WithLabelValues(version).Set(1)
}

// Gatherer returns the registry backing the recorder
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
