package sandbox

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

func registerCreditCardRoutes(r *gin.RouterGroup) {
	r.GET("", getCreditCards)
	r.POST("", createCreditCard)
	r.GET("/:id", getCreditCard)
	r.PUT("/:id", updateCreditCard)
	r.DELETE("/:id", deleteCreditCard)
}

func newCreditCard(m models.CreditCard) client.CreditCard {
	return client.CreditCard{
		ID:             m.ID.String(),
		Name:           m.Name,
		ClosingDay:     m.ClosingDay,
		DueDay:         m.DueDay,
		LimitValue:     m.LimitValue,
		UsedLimit:      decimal.Zero,
		AvailableLimit: m.LimitValue,
	}
}

func getCreditCards(c *gin.Context) {
	var cards []models.CreditCard
	err := models.DB.Order("name ASC").Find(&cards).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	data := make([]client.CreditCard, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCreditCard(card))
	}

	c.JSON(http.StatusOK, data)
}

func getCreditCard(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var card models.CreditCard
	err := models.DB.First(&card, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newCreditCard(card))
}

func createCreditCard(c *gin.Context) {
	var request client.CreditCardRequest
	if !bindBody(c, &request) {
		return
	}

	card := models.CreditCard{
		Name:       request.Name,
		ClosingDay: request.ClosingDay,
		DueDay:     request.DueDay,
		LimitValue: request.LimitValue,
	}

	err := models.DB.Create(&card).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, newCreditCard(card))
}

func updateCreditCard(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var card models.CreditCard
	err := models.DB.First(&card, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	var request client.CreditCardRequest
	if !bindBody(c, &request) {
		return
	}

	card.Name = request.Name
	card.ClosingDay = request.ClosingDay
	card.DueDay = request.DueDay
	card.LimitValue = request.LimitValue

	err = models.DB.Omit(clause.Associations).Save(&card).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newCreditCard(card))
}

func deleteCreditCard(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var card models.CreditCard
	err := models.DB.First(&card, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	err = models.DB.Delete(&card).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
