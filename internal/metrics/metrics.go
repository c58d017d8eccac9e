// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the application.
//
// Labels are limited to route patterns, methods, status codes and source
// kinds so cardinality stays bounded; profile names are never used as
// labels.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "deploy_profiles"

// Source kinds used as the "source" label.
const (
	SourceDefaults = "defaults"
	SourceExplicit = "explicit"
)

// Load results used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// HTTPRequestsTotal counts served requests by route pattern, method and
	// status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by route, method and status.",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration observes request latency by route pattern and
	// method.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// SourceLoadsTotal counts profile source loads by source kind and
	// result.
	SourceLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_loads_total",
		Help:      "Total number of profile source loads, by source and result.",
	}, []string{"source", "result"})

	// ProfilesRegistered is the number of profiles in the registry.
	ProfilesRegistered = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "profiles_registered",
		Help:      "Number of resolved profiles in the registry.",
	})
)

// LoadResult maps a load error to its "result" label value.
func LoadResult(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
