package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "character_submissions_total",
			Help: "Total character submissions by outcome",
		},
		[]string{"outcome"},
	)

	revisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "character_revisions_total",
			Help: "Total character revisions by kind",
		},
		[]string{"kind"},
	)

	reviewDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "character_review_decisions_total",
			Help: "Total review decisions by result",
		},
		[]string{"decision"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification delivery attempts by outcome",
		},
		[]string{"outcome"},
	)
)
