package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/seqguard/seqguard-go/pkg/seqguard"
)

var screeningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "seqguard_screenings_total",
	Help: "Completed screening analyses by homology risk level.",
}, []string{"risk_level"})

func observeScreening(level seqguard.RiskLevel) {
	screeningsTotal.WithLabelValues(level.String()).Inc()
}
