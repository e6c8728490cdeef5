// Package v1 implements the v1 API of the backend-for-frontend.
//
// All resources are owned by the finance API. The handlers forward the
// bearer token of the caller, so every request acts in the session of the
// user that sent it.
package v1

import (
	"strings"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/dashboard"
	"github.com/finance-dashboard/backend/internal/form"
	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies of the v1 handlers.
type Controller struct {
	Client    *client.Client
	Forms     *form.Store
	Formatter *dashboard.Formatter
}

// api returns the finance API client acting with the credentials
// of the request.
func (co Controller) api(c *gin.Context) *client.Client {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok || token == "" {
		return co.Client
	}

	return co.Client.WithToken(token)
}

// RegisterRoutes registers all v1 resources with the RouterGroup that
// is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterTransactionFormRoutes(r.Group("/transaction-forms"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterCreditCardRoutes(r.Group("/credit-cards"))
	co.RegisterDashboardRoutes(r.Group("/dashboard"))
}
