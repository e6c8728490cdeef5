package models_test

import (
	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountBeforeSave() {
	tests := []struct {
		name    string
		account models.Account
		err     error
	}{
		{"Valid", models.Account{Name: " Wallet ", Type: client.AccountCash}, nil},
		{"Name too short", models.Account{Name: "W", Type: client.AccountCash}, models.ErrNameTooShort},
		{"Invalid type", models.Account{Name: "Wallet", Type: "CRYPTO"}, models.ErrTypeInvalid},
		{"Negative balance", models.Account{Name: "Wallet", Type: client.AccountCash, InitialBalance: decimal.NewFromInt(-1)}, models.ErrBalanceNegative},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.account).Error
			if tt.err == nil {
				suite.Require().Nil(err)
				suite.Assert().Equal("Wallet", tt.account.Name)
				return
			}

			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryBeforeSave() {
	err := models.DB.Create(&models.Category{Name: "Salary", Type: "TRANSFER"}).Error
	suite.Assert().ErrorIs(err, models.ErrTypeInvalid)

	err = models.DB.Create(&models.Category{Name: "S", Type: client.CategoryIncome}).Error
	suite.Assert().ErrorIs(err, models.ErrNameTooShort)
}

func (suite *TestSuiteStandard) TestCreditCardBeforeSave() {
	tests := []struct {
		name string
		card models.CreditCard
		err  error
	}{
		{"Valid", models.CreditCard{Name: "Gold", ClosingDay: 31, DueDay: 1}, nil},
		{"Closing day zero", models.CreditCard{Name: "Gold", ClosingDay: 0, DueDay: 1}, models.ErrDayInvalid},
		{"Due day 32", models.CreditCard{Name: "Gold", ClosingDay: 1, DueDay: 32}, models.ErrDayInvalid},
		{"Negative limit", models.CreditCard{Name: "Gold", ClosingDay: 1, DueDay: 1, LimitValue: decimal.NewFromInt(-10)}, models.ErrLimitNegative},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.card).Error
			if tt.err == nil {
				suite.Assert().Nil(err)
				return
			}

			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestNotFound() {
	var category models.Category
	err := models.DB.First(&category, "id = ?", "5a5b5c5d-0000-4000-8000-000000000000").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestCreditCardNotFoundMessage() {
	var card models.CreditCard
	err := models.DB.First(&card, "id = ?", "5a5b5c5d-0000-4000-8000-000000000000").Error

	suite.Assert().Equal("there is no credit card matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.Create(&models.Category{Name: "Salary", Type: client.CategoryIncome}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
