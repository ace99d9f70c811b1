// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Entity registration metrics (authors, magazines)
//   - Publishing metrics (articles by category)
//   - Validation failure metrics (by field)
//
// All metrics are automatically registered with the Prometheus default registry.
//
// Example usage:
//
//	import "newsdesk/internal/observability/metrics"
//
//	func publish(category string) {
//	    // ... construct and register the article ...
//	    metrics.RecordArticlePublished(category)
//	}
package metrics
