package v1

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterCreditCardRoutes registers the routes for credit cards with
// the RouterGroup that is passed.
func (co Controller) RegisterCreditCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCreditCardList)
		r.GET("", co.GetCreditCards)
		r.POST("", co.CreateCreditCard)
	}

	// Credit card with ID
	{
		r.OPTIONS("/:id", optionsDetail)
		r.GET("/:id", co.GetCreditCard)
		r.PUT("/:id", co.UpdateCreditCard)
		r.DELETE("/:id", co.DeleteCreditCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credit Cards
// @Success		204
// @Router			/v1/credit-cards [options]
func (co Controller) OptionsCreditCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get credit cards
// @Description	Returns a list of credit cards
// @Tags			Credit Cards
// @Produce		json
// @Success		200	{object}	ListResponse[client.CreditCard]
// @Failure		401	{object}	httpError
// @Failure		502	{object}	httpError
// @Router			/v1/credit-cards [get]
func (co Controller) GetCreditCards(c *gin.Context) {
	listResources(c, co.api(c).CreditCards())
}

// @Summary		Create credit card
// @Description	Creates a new credit card
// @Tags			Credit Cards
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[client.CreditCard]
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			card	body		CreditCardEditable	true	"Credit card"
// @Router			/v1/credit-cards [post]
func (co Controller) CreateCreditCard(c *gin.Context) {
	createResource[client.CreditCard, client.CreditCardRequest, CreditCardEditable](c, co.api(c).CreditCards())
}

// @Summary		Get credit card
// @Description	Returns a specific credit card
// @Tags			Credit Cards
// @Produce		json
// @Success		200	{object}	Response[client.CreditCard]
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the credit card"
// @Router			/v1/credit-cards/{id} [get]
func (co Controller) GetCreditCard(c *gin.Context) {
	getResource(c, co.api(c).CreditCards())
}

// @Summary		Update credit card
// @Description	Replaces a specific credit card
// @Tags			Credit Cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[client.CreditCard]
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			id		path		string			true	"ID of the credit card"
// @Param			card	body		CreditCardEditable	true	"Credit card"
// @Router			/v1/credit-cards/{id} [put]
func (co Controller) UpdateCreditCard(c *gin.Context) {
	updateResource[client.CreditCard, client.CreditCardRequest, CreditCardEditable](c, co.api(c).CreditCards())
}

// @Summary		Delete credit card
// @Description	Deletes a credit card
// @Tags			Credit Cards
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the credit card"
// @Router			/v1/credit-cards/{id} [delete]
func (co Controller) DeleteCreditCard(c *gin.Context) {
	deleteResource(c, co.api(c).CreditCards())
}
