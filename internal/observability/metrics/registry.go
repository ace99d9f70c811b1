// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track registry operations
var (
	// AuthorsRegisteredTotal counts authors registered in the registry
	AuthorsRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "authors_registered_total",
			Help: "Total number of authors registered",
		},
	)

	// MagazinesRegisteredTotal counts magazines registered in the registry
	MagazinesRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "magazines_registered_total",
			Help: "Total number of magazines registered",
		},
	)

	// ArticlesPublishedTotal counts published articles by magazine category
	ArticlesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_published_total",
			Help: "Total number of articles published",
		},
		[]string{"category"},
	)

	// ValidationFailuresTotal counts rejected field assignments by field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of rejected field assignments",
		},
		[]string{"field"},
	)
)
