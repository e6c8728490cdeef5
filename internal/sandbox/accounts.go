package sandbox

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

func registerAccountRoutes(r *gin.RouterGroup) {
	r.GET("", getAccounts)
	r.POST("", createAccount)
	r.GET("/:id", getAccount)
	r.PUT("/:id", updateAccount)
	r.DELETE("/:id", deleteAccount)
}

func newAccount(a models.Account) client.Account {
	return client.Account{
		ID:             a.ID.String(),
		Name:           a.Name,
		InitialBalance: a.InitialBalance,
		CurrentBalance: a.InitialBalance,
		Type:           a.Type,
	}
}

func getAccounts(c *gin.Context) {
	var accounts []models.Account
	err := models.DB.Order("name ASC").Find(&accounts).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	data := make([]client.Account, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, newAccount(a))
	}

	c.JSON(http.StatusOK, data)
}

func getAccount(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var account models.Account
	err := models.DB.First(&account, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newAccount(account))
}

func createAccount(c *gin.Context) {
	var request client.AccountRequest
	if !bindBody(c, &request) {
		return
	}

	account := models.Account{
		Name:           request.Name,
		Type:           request.Type,
		InitialBalance: request.InitialBalance,
	}

	err := models.DB.Create(&account).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, newAccount(account))
}

func updateAccount(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var account models.Account
	err := models.DB.First(&account, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	var request client.AccountRequest
	if !bindBody(c, &request) {
		return
	}

	account.Name = request.Name
	account.Type = request.Type
	account.InitialBalance = request.InitialBalance

	err = models.DB.Omit(clause.Associations).Save(&account).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newAccount(account))
}

func deleteAccount(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var account models.Account
	err := models.DB.First(&account, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	err = models.DB.Delete(&account).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
