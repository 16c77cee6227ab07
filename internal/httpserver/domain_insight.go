package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	insightHTTP "taskpulse/internal/insight/delivery/http"
)

// setupInsightDomain registers the insight domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase wiring in cmd/api (repo → usecase)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv *HTTPServer) setupInsightDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := insightHTTP.New(srv.l, srv.insightUC)
	insightHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Insight domain registered")
	return nil
}
