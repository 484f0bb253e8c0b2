package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubscriptionPurchases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_subscription_purchases_total",
		Help: "Subscription purchases by action.",
	}, []string{"action"})

	BoostPurchases = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_boost_purchases_total",
		Help: "Boost purchases.",
	})

	PaymentsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_payments_confirmed_total",
		Help: "Admin payment confirmations.",
	})

	SubscriptionsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_subscriptions_expired_total",
		Help: "Subscriptions transitioned to EXPIRED by the reconciler.",
	})

	BoostsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_boosts_expired_total",
		Help: "Posts unboosted by the reconciler.",
	})

	SweepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_sweep_failures_total",
		Help: "Reconciler sweep failures by sweep type.",
	}, []string{"sweep"})
)
