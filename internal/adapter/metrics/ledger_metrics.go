package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"clip-market/internal/core/domain"
)

// LedgerMetrics holds the Prometheus collectors of the payout ledger. A nil
// *LedgerMetrics is valid and records nothing.
type LedgerMetrics struct {
	CampaignsCreatedTotal   prometheus.Counter
	CampaignStatusTotal     *prometheus.CounterVec
	SubmissionsCreatedTotal *prometheus.CounterVec
	ReviewsTotal            *prometheus.CounterVec
	PayoutApprovedMinor     prometheus.Counter
	PayoutPaidMinor         prometheus.Counter
	ReviewErrorsTotal       *prometheus.CounterVec
}

// NewLedgerMetrics registers the ledger collectors on reg.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	f := promauto.With(reg)
	return &LedgerMetrics{
		CampaignsCreatedTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "ledger_campaigns_created_total",
			Help: "Number of campaigns created.",
		}),
		CampaignStatusTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_campaign_status_changes_total",
			Help: "Campaign status changes by new status.",
		}, []string{"status"}),
		SubmissionsCreatedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_submissions_created_total",
			Help: "Submissions created by platform.",
		}, []string{"platform"}),
		ReviewsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_reviews_total",
			Help: "Successful review transitions by outcome (approved, rejected, paid).",
		}, []string{"outcome"}),
		PayoutApprovedMinor: f.NewCounter(prometheus.CounterOpts{
			Name: "ledger_payout_approved_minor_total",
			Help: "Sum of approved payouts in minor currency units.",
		}),
		PayoutPaidMinor: f.NewCounter(prometheus.CounterOpts{
			Name: "ledger_payout_paid_minor_total",
			Help: "Sum of paid-out payouts in minor currency units.",
		}),
		ReviewErrorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_review_errors_total",
			Help: "Rejected review attempts by operation and reason.",
		}, []string{"operation", "reason"}),
	}
}

func (m *LedgerMetrics) RecordCampaignCreated() {
	if m == nil {
		return
	}
	m.CampaignsCreatedTotal.Inc()
}

func (m *LedgerMetrics) RecordCampaignStatus(status domain.CampaignStatus) {
	if m == nil {
		return
	}
	m.CampaignStatusTotal.WithLabelValues(string(status)).Inc()
}

func (m *LedgerMetrics) RecordSubmission(platform domain.Platform) {
	if m == nil {
		return
	}
	m.SubmissionsCreatedTotal.WithLabelValues(string(platform)).Inc()
}

// RecordApproved counts an approval and the payout it debited.
func (m *LedgerMetrics) RecordApproved(payout domain.Money) {
	if m == nil {
		return
	}
	m.ReviewsTotal.WithLabelValues("approved").Inc()
	m.PayoutApprovedMinor.Add(float64(payout.Minor()))
}

func (m *LedgerMetrics) RecordRejected() {
	if m == nil {
		return
	}
	m.ReviewsTotal.WithLabelValues("rejected").Inc()
}

func (m *LedgerMetrics) RecordPaid(payout domain.Money) {
	if m == nil {
		return
	}
	m.ReviewsTotal.WithLabelValues("paid").Inc()
	m.PayoutPaidMinor.Add(float64(payout.Minor()))
}

// RecordReviewError counts a failed review transition.
func (m *LedgerMetrics) RecordReviewError(operation, reason string) {
	if m == nil {
		return
	}
	m.ReviewErrorsTotal.WithLabelValues(operation, reason).Inc()
}
