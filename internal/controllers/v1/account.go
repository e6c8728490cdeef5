package v1

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", optionsDetail)
		r.GET("/:id", co.GetAccount)
		r.PUT("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func (co Controller) OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	ListResponse[client.Account]
// @Failure		401	{object}	httpError
// @Failure		502	{object}	httpError
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	listResources(c, co.api(c).Accounts())
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[client.Account]
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	createResource[client.Account, client.AccountRequest, AccountEditable](c, co.api(c).Accounts())
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	Response[client.Account]
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	getResource(c, co.api(c).Accounts())
}

// @Summary		Update account
// @Description	Replaces a specific account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[client.Account]
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			id		path		string			true	"ID of the account"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [put]
func (co Controller) UpdateAccount(c *gin.Context) {
	updateResource[client.Account, client.AccountRequest, AccountEditable](c, co.api(c).Accounts())
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	deleteResource(c, co.api(c).Accounts())
}
