// Package metrics exports node, sync and payment evaluation state to
// Prometheus.
package metrics

import (
	"context"
	"net/http"
	"sync"

	"simplepay/internal/core/domain"
	"simplepay/internal/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "simplepay"

// Collector holds every simplepay metric. It implements
// ports.EvaluationObserver.
type Collector struct {
	nodeConnected prometheus.Gauge
	nodeChecks    *prometheus.CounterVec
	syncPercent   prometheus.Gauge
	syncReady     prometheus.Gauge
	scanHeight    prometheus.Gauge
	chainHeight   prometheus.Gauge
	balance       *prometheus.GaugeVec
	outputs       prometheus.Counter
	evaluations   *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		nodeConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "node",
			Name:      "connected",
			Help:      "1 while the last health check of the node succeeded.",
		}),
		nodeChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "node",
			Name:      "checks_total",
			Help:      "Node health checks by outcome.",
		}, []string{"result"}),
		syncPercent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "percent_done",
			Help:      "Progress of the current wallet sync cycle.",
		}),
		syncReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "ready",
			Help:      "1 while the wallet view is caught up with the node.",
		}),
		scanHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "scan_height",
			Help:      "Height the wallet has scanned up to.",
		}),
		chainHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "chain_height",
			Help:      "Latest chain height reported by the node.",
		}),
		balance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "balance_atomic",
			Help:      "Wallet balance in atomic units.",
		}, []string{"kind"}),
		outputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "outputs_received_total",
			Help:      "Incoming outputs seen by the wallet.",
		}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "evaluations_total",
			Help:      "Payment request evaluations by resulting status.",
		}, []string{"status"}),
	}
	reg.MustRegister(
		c.nodeConnected,
		c.nodeChecks,
		c.syncPercent,
		c.syncReady,
		c.scanHeight,
		c.chainHeight,
		c.balance,
		c.outputs,
		c.evaluations,
	)
	return c
}

// ObserveEvaluation counts one payment evaluation.
func (c *Collector) ObserveEvaluation(status domain.PaymentStatus) {
	c.evaluations.WithLabelValues(string(status)).Inc()
}

func (c *Collector) observeConnection(ev domain.ConnectionChanged) {
	if ev.Connected {
		c.nodeConnected.Set(1)
		c.nodeChecks.WithLabelValues("ok").Inc()
		return
	}
	c.nodeConnected.Set(0)
	c.nodeChecks.WithLabelValues("failed").Inc()
}

func (c *Collector) observeProgress(ev domain.SyncProgress) {
	c.syncPercent.Set(ev.PercentDone)
	c.scanHeight.Set(float64(ev.Height))
	c.chainHeight.Set(float64(ev.EndHeight))
}

func (c *Collector) observeReadiness(ready bool) {
	if ready {
		c.syncReady.Set(1)
		return
	}
	c.syncReady.Set(0)
}

func (c *Collector) observeBalance(ev domain.BalanceChanged) {
	c.balance.WithLabelValues("total").Set(float64(ev.Balance.Total))
	c.balance.WithLabelValues("unlocked").Set(float64(ev.Balance.Unlocked))
}

// ReadinessSource publishes readiness changes.
type ReadinessSource interface {
	SubscribeReadiness() (<-chan bool, func())
}

// Start feeds bus events and readiness changes into the metrics until ctx is
// done or the sources close. Subscriptions are taken before Start returns;
// the returned func waits for the consumers to exit.
func (c *Collector) Start(ctx context.Context, bus *events.Bus, readiness ReadinessSource) (wait func()) {
	conns, cancelConns := bus.Connection.Subscribe()
	progress, cancelProgress := bus.Progress.Subscribe()
	blocks, cancelBlocks := bus.NewBlock.Subscribe()
	balances, cancelBalances := bus.Balance.Subscribe()
	outputs, cancelOutputs := bus.Output.Subscribe()
	ready, cancelReady := readiness.SubscribeReadiness()

	var wg sync.WaitGroup
	run := func(cancel func(), consume func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()
			consume()
		}()
	}
	run(cancelConns, func() { events.Consume(ctx, conns, c.observeConnection) })
	run(cancelProgress, func() { events.Consume(ctx, progress, c.observeProgress) })
	run(cancelBlocks, func() {
		events.Consume(ctx, blocks, func(ev domain.NewBlock) { c.chainHeight.Set(float64(ev.Height)) })
	})
	run(cancelBalances, func() { events.Consume(ctx, balances, c.observeBalance) })
	run(cancelOutputs, func() {
		events.Consume(ctx, outputs, func(domain.OutputReceived) { c.outputs.Inc() })
	})
	run(cancelReady, func() { events.Consume(ctx, ready, c.observeReadiness) })
	return wg.Wait
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
