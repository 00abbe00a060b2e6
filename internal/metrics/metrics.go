package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	GroupBuyJoins = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "trusttrade_group_buy_joins_total", Help: "Total successful group buy joins"},
	)
	GroupBuysClosed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "trusttrade_group_buys_closed_total", Help: "Total group buys that reached their target"},
	)
	LoansFunded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "trusttrade_loans_funded_total", Help: "Total loan requests funded"},
	)
	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "trusttrade_notifications_sent_total", Help: "Total waste notifications created"},
	)
	MessagesSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "trusttrade_messages_sent_total", Help: "Total direct messages sent"},
	)
)

func Register() {
	prometheus.MustRegister(GroupBuyJoins, GroupBuysClosed, LoansFunded, NotificationsSent, MessagesSent)
}
