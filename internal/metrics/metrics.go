package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transfer/sale outcome label values.
const (
	OutcomeOK             = "ok"
	OutcomeOrderNotFound  = "order_not_found"
	OutcomeAmountMismatch = "amount_mismatch"
	OutcomeWalletNotFound = "wallet_not_found"
	OutcomeShutdown       = "shutdown"
	OutcomeUnavailable    = "unavailable"
)

// LedgerMetrics holds the wallet ledger's Prometheus collectors.
type LedgerMetrics struct {
	OrdersCreatedTotal       prometheus.Counter
	OrdersCreatedAmountTotal prometheus.Counter
	TransfersTotal           *prometheus.CounterVec
	PendingOrders            prometheus.Gauge
}

// NewLedgerMetrics registers the ledger collectors on reg.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	factory := promauto.With(reg)
	return &LedgerMetrics{
		OrdersCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_orders_created_total",
			Help: "Number of payment orders created",
		}),
		OrdersCreatedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ledger_orders_created_amount_total",
			Help: "Total amount held in created payment orders",
		}),
		TransfersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_transfers_total",
			Help: "Number of transfer attempts by outcome",
		}, []string{"outcome"}),
		PendingOrders: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_pending_orders",
			Help: "Outstanding (unredeemed) payment orders",
		}),
	}
}

// StorefrontMetrics holds the storefront's Prometheus collectors.
type StorefrontMetrics struct {
	SalesTotal    *prometheus.CounterVec
	SellerBalance prometheus.Gauge
}

// NewStorefrontMetrics registers the storefront collectors on reg.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	factory := promauto.With(reg)
	return &StorefrontMetrics{
		SalesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_sales_total",
			Help: "Number of sale attempts by outcome",
		}, []string{"outcome"}),
		SellerBalance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_seller_balance",
			Help: "Locally cached seller balance",
		}),
	}
}
