// Package metrics exposes Prometheus instruments for the identity flow.
package metrics

import (
	"net/http"

	"community/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "community"

// Registry owns the process collectors and the identity instruments.
type Registry struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
	logins      *prometheus.CounterVec
}

// NewRegistry creates a private registry with the Go and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_resolutions_total",
		Help:      "Identity resolutions by outcome.",
	}, []string{"outcome"})

	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "social_logins_total",
		Help:      "Completed provider callbacks by provider and result.",
	}, []string{"provider", "result"})

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		resolutions,
		logins,
	)

	return &Registry{
		registry:    reg,
		resolutions: resolutions,
		logins:      logins,
	}
}

// ObserveResolution counts one resolver outcome.
func (r *Registry) ObserveResolution(outcome service.ResolutionOutcome) {
	r.resolutions.WithLabelValues(string(outcome)).Inc()
}

// ObserveLogin counts one provider callback.
func (r *Registry) ObserveLogin(provider string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	r.logins.WithLabelValues(provider, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry),
	fx.Provide(func(r *Registry) service.IdentityMetrics { return r }),
	fx.Provide(func(r *Registry) service.LoginMetrics { return r }),
)
