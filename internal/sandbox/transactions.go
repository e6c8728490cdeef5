package sandbox

import (
	"fmt"
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func registerTransactionRoutes(r *gin.RouterGroup) {
	r.GET("", getTransactions)
	r.POST("", createTransaction)
	r.GET("/period", getTransactionsByPeriod)
	r.GET("/pending", getPendingTransactions)
	r.GET("/:id", getTransaction)
	r.PUT("/:id", updateTransaction)
	r.DELETE("/:id", deleteTransaction)
	r.PATCH("/:id/mark-as-paid", markTransactionPaid)
}

func newTransaction(m models.Transaction) client.Transaction {
	t := client.Transaction{
		ID:                 m.ID.String(),
		Description:        m.Description,
		Amount:             m.Amount,
		Date:               m.Date,
		Paid:               m.Paid,
		Type:               m.Type,
		CategoryID:         m.CategoryID.String(),
		CategoryName:       m.Category.Name,
		AccountName:        m.AccountName(),
		CreditCardName:     m.CreditCardName(),
		InstallmentCurrent: m.InstallmentCurrent,
		InstallmentTotal:   m.InstallmentTotal,
	}

	if m.AccountID != nil {
		id := m.AccountID.String()
		t.AccountID = &id
	}

	if m.CreditCardID != nil {
		id := m.CreditCardID.String()
		t.CreditCardID = &id
	}

	return t
}

// parseID parses an ID sent in a request body.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q is not a valid ID", models.ErrReferenceNotFound, id)
	}

	return parsed, nil
}

// parseOptionalID parses an optional ID sent in a request body.
func parseOptionalID(id *string) (*uuid.UUID, error) {
	if id == nil || *id == "" {
		return nil, nil
	}

	parsed, err := parseID(*id)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// transactionModel converts the request into the model. The ID of the
// model is set to id.
func transactionModel(id uuid.UUID, r client.TransactionRequest) (models.Transaction, error) {
	categoryID, err := parseID(r.CategoryID)
	if err != nil {
		return models.Transaction{}, err
	}

	accountID, err := parseOptionalID(r.AccountID)
	if err != nil {
		return models.Transaction{}, err
	}

	creditCardID, err := parseOptionalID(r.CreditCardID)
	if err != nil {
		return models.Transaction{}, err
	}

	t := models.Transaction{
		Description:        r.Description,
		Amount:             r.Amount,
		Date:               r.Date,
		Paid:               r.Paid,
		Type:               r.Type,
		CategoryID:         categoryID,
		AccountID:          accountID,
		CreditCardID:       creditCardID,
		InstallmentCurrent: r.InstallmentCurrent,
		InstallmentTotal:   r.InstallmentTotal,
	}
	t.ID = id

	return t, nil
}

// transactions returns a query for transactions with the referenced
// resources loaded, latest first.
func transactions() *gorm.DB {
	return models.DB.
		Preload("Category").
		Preload("Account").
		Preload("CreditCard").
		Order("date DESC, created_at DESC")
}

// list sends all transactions matching the query.
func list(c *gin.Context, q *gorm.DB) {
	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	data := make([]client.Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(t))
	}

	c.JSON(http.StatusOK, data)
}

func getTransactions(c *gin.Context) {
	list(c, transactions())
}

func getTransactionsByPeriod(c *gin.Context) {
	start, err := types.ParseDate(c.Query("startDate"))
	if err != nil {
		problem(c, http.StatusBadRequest, errPeriod)
		return
	}

	end, err := types.ParseDate(c.Query("endDate"))
	if err != nil {
		problem(c, http.StatusBadRequest, errPeriod)
		return
	}

	list(c, transactions().Where("date >= ? AND date <= ?", start, end))
}

func getPendingTransactions(c *gin.Context) {
	list(c, transactions().Where("paid = ?", false))
}

// sendTransaction loads the transaction with its references and sends it.
func sendTransaction(c *gin.Context, code int, id uuid.UUID) {
	var t models.Transaction
	err := transactions().First(&t, "transactions.id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(code, newTransaction(t))
}

func getTransaction(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	sendTransaction(c, http.StatusOK, id.UUID)
}

func createTransaction(c *gin.Context) {
	var request client.TransactionRequest
	if !bindBody(c, &request) {
		return
	}

	t, err := transactionModel(uuid.Nil, request)
	if err != nil {
		problem(c, status(err), err)
		return
	}

	err = models.DB.Omit(clause.Associations).Create(&t).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	sendTransaction(c, http.StatusCreated, t.ID)
}

func updateTransaction(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var existing models.Transaction
	err := models.DB.First(&existing, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	var request client.TransactionRequest
	if !bindBody(c, &request) {
		return
	}

	t, err := transactionModel(existing.ID, request)
	if err != nil {
		problem(c, status(err), err)
		return
	}
	t.CreatedAt = existing.CreatedAt

	err = models.DB.Omit(clause.Associations).Save(&t).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	sendTransaction(c, http.StatusOK, t.ID)
}

func deleteTransaction(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var t models.Transaction
	err := models.DB.First(&t, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	err = models.DB.Delete(&t).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

func markTransactionPaid(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var t models.Transaction
	err := models.DB.First(&t, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	err = models.DB.Model(&t).Update("paid", true).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	sendTransaction(c, http.StatusOK, t.ID)
}
