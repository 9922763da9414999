// Package metrics is the process-wide observability sink. Handlers record
// outcomes here instead of mutating counters themselves; the registry is
// created once at startup and a fresh one per test.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers depend on. Noop satisfies it for tests.
type Recorder interface {
	IncRequest(route string, status int)
	IncBid(outcome string)
}

type Prom struct {
	reg *prometheus.Registry

	RequestsTotal *prometheus.CounterVec
	BidsTotal     *prometheus.CounterVec
}

func NewProm() *Prom {
	reg := prometheus.NewRegistry()
	p := &Prom{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "API requests by route and status",
		}, []string{"route", "status"}),
		BidsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bids_total",
			Help: "Bid submissions by admission outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(p.RequestsTotal, p.BidsTotal)
	return p
}

func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

func (p *Prom) IncRequest(route string, status int) {
	p.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (p *Prom) IncBid(outcome string) {
	p.BidsTotal.WithLabelValues(outcome).Inc()
}

type Noop struct{}

func (Noop) IncRequest(string, int) {}
func (Noop) IncBid(string)          {}
