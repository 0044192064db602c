package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission channels.
const (
	ChannelForm = "form"
	ChannelAPI  = "api"
)

// Submission results.
const (
	ResultAccepted   = "accepted"
	ResultIncomplete = "incomplete"
	ResultInvalid    = "invalid"
	ResultInFlight   = "in_flight"
	ResultFailed     = "failed"
)

// LeadMetrics exposes counters/histograms for the lead capture flow.
type LeadMetrics struct {
	modalTotal      *prometheus.CounterVec
	submissionTotal *prometheus.CounterVec
	volumeTotal     *prometheus.CounterVec
	submitLatency   *prometheus.HistogramVec
	toggleTotal     *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		modalTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Subsystem: "leads",
			Name:      "modal_transitions_total",
			Help:      "Demo request modal transitions",
		}, []string{"action"}),
		submissionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Lead request submissions by outcome",
		}, []string{"channel", "result"}),
		volumeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Subsystem: "leads",
			Name:      "accepted_by_volume_total",
			Help:      "Accepted lead requests by monthly contract volume",
		}, []string{"volume"}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "landing",
			Subsystem: "leads",
			Name:      "submit_latency_seconds",
			Help:      "Latency of handing a lead request to the submitter",
			Buckets:   prometheus.DefBuckets,
		}, []string{"channel"}),
		toggleTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Subsystem: "page",
			Name:      "disclosure_toggles_total",
			Help:      "FAQ and menu disclosure toggles",
		}, []string{"widget"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.modalTotal, m.submissionTotal, m.volumeTotal, m.submitLatency, m.toggleTotal)
	return m
}

func (m *LeadMetrics) ObserveModal(action string) {
	if m == nil {
		return
	}
	m.modalTotal.WithLabelValues(action).Inc()
}

func (m *LeadMetrics) ObserveSubmission(channel, result string) {
	if m == nil {
		return
	}
	m.submissionTotal.WithLabelValues(channel, result).Inc()
}

func (m *LeadMetrics) ObserveVolume(volume string) {
	if m == nil {
		return
	}
	m.volumeTotal.WithLabelValues(volume).Inc()
}

func (m *LeadMetrics) ObserveSubmitLatency(channel string, seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.WithLabelValues(channel).Observe(seconds)
}

func (m *LeadMetrics) ObserveToggle(widget string) {
	if m == nil {
		return
	}
	m.toggleTotal.WithLabelValues(widget).Inc()
}
