package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and serves until the listener fails or the
// process is stopped.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(ctx, "HTTP server listening on %s (%s)", addr, srv.environment)

	return srv.gin.Run(addr)
}
