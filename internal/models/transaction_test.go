package models_test

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/finance-dashboard/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T {
	return &v
}

func (suite *TestSuiteStandard) defaultTransaction() models.Transaction {
	return models.Transaction{
		Description: "Market",
		Amount:      decimal.NewFromInt(50),
		Date:        types.NewDate(2024, 1, 5),
		Type:        client.TypeExpense,
		CategoryID:  suite.createTestCategory(models.Category{}).ID,
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	account := suite.createTestAccount(models.Account{})
	t := suite.defaultTransaction()
	t.AccountID = &account.ID
	t.InstallmentCurrent = ptr(1)
	t.InstallmentTotal = ptr(3)

	suite.Require().Nil(models.DB.Create(&t).Error)

	var loaded models.Transaction
	err := models.DB.Preload("Category").Preload("Account").Preload("CreditCard").First(&loaded, "id = ?", t.ID).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("Groceries", loaded.Category.Name)
	suite.Assert().Equal("Checking", loaded.AccountName())
	suite.Assert().Equal("", loaded.CreditCardName())
	suite.Assert().Equal("2024-01-05", loaded.Date.String())
	suite.Assert().True(decimal.NewFromInt(50).Equal(loaded.Amount))
	suite.Assert().Equal(3, *loaded.InstallmentTotal)
}

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	account := suite.createTestAccount(models.Account{})
	card := suite.createTestCreditCard(models.CreditCard{})
	income := suite.createTestCategory(models.Category{Name: "Salary", Type: client.CategoryIncome})

	tests := []struct {
		name   string
		modify func(*models.Transaction)
		err    error
	}{
		{"Short description", func(t *models.Transaction) { t.Description = "M" }, models.ErrNameTooShort},
		{"Zero amount", func(t *models.Transaction) { t.Amount = decimal.Zero }, models.ErrAmountNotPositive},
		{"No date", func(t *models.Transaction) { t.Date = types.Date{} }, models.ErrDateMissing},
		{"Invalid type", func(t *models.Transaction) { t.Type = "LOAN" }, models.ErrTypeInvalid},
		{"Account and credit card", func(t *models.Transaction) {
			t.AccountID = &account.ID
			t.CreditCardID = &card.ID
		}, models.ErrPaymentSourceExclusive},
		{"Only one installment field", func(t *models.Transaction) { t.InstallmentTotal = ptr(3) }, models.ErrInstallmentRange},
		{"Installment out of range", func(t *models.Transaction) {
			t.InstallmentCurrent = ptr(4)
			t.InstallmentTotal = ptr(3)
		}, models.ErrInstallmentRange},
		{"Category of other type", func(t *models.Transaction) { t.CategoryID = income.ID }, models.ErrCategoryTypeMismatch},
		{"Unknown category", func(t *models.Transaction) { t.CategoryID = uuid.New() }, models.ErrReferenceNotFound},
		{"Unknown account", func(t *models.Transaction) { t.AccountID = ptr(uuid.New()) }, models.ErrReferenceNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.defaultTransaction()
			tt.modify(&t)

			err := models.DB.Create(&t).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTransferAnyCategory() {
	t := suite.defaultTransaction()
	t.Type = client.TypeTransfer
	t.CategoryID = suite.createTestCategory(models.Category{Name: "Salary", Type: client.CategoryIncome}).ID

	suite.Assert().Nil(models.DB.Create(&t).Error)
}

func (suite *TestSuiteStandard) TestTransactionNilUUIDReferences() {
	t := suite.defaultTransaction()
	t.AccountID = &uuid.Nil
	t.CreditCardID = &uuid.Nil

	suite.Require().Nil(models.DB.Create(&t).Error)
	suite.Assert().Nil(t.AccountID)
	suite.Assert().Nil(t.CreditCardID)
}

func (suite *TestSuiteStandard) TestDeleteCategoryInUse() {
	t := suite.defaultTransaction()
	suite.Require().Nil(models.DB.Create(&t).Error)

	err := models.DB.Delete(&models.Category{}, "id = ?", t.CategoryID).Error
	suite.Assert().ErrorIs(err, models.ErrInUse)
}
