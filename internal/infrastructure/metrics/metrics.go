package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the auth endpoints, exposed on /metrics.
var (
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "echo_registrations_total",
		Help: "Number of accounts created.",
	})

	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "echo_logins_total",
		Help: "Number of successful logins.",
	})

	EmailVerificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "echo_email_verifications_total",
		Help: "Number of successfully redeemed verification tokens.",
	})

	VerificationEmailsResentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "echo_verification_emails_resent_total",
		Help: "Number of verification emails re-sent on request.",
	})
)
