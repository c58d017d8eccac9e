// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled, a stop signal arrives or the
// listener fails. Shutdown stops serving and drains in-flight requests.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown()
}
