package request

import (
	"errors"
	"strings"

	"pixbridge/internal/domain/entities"
	"pixbridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// BankAccountRequest is the withdraw destination. Bank, agency, account and
// the holder's name and document are required.

type BankAccountRequest struct {
	Bank                  string `json:"bank"`
	Agency                string `json:"agency"`
	Account               string `json:"account"`
	AccountType           string `json:"account_type"`
	AccountHolderName     string `json:"account_holder_name"`
	AccountHolderDocument string `json:"account_holder_document"`
}

// CreateWithdrawRequest is the payload for POST /v1/withdraw.

type CreateWithdrawRequest struct {
	Amount      decimal.Decimal     `json:"amount"`
	BankAccount *BankAccountRequest `json:"bank_account"`
}

func (r CreateWithdrawRequest) Validate() error {
	if r.BankAccount == nil {
		return errors.New("bank_account is required")
	}
	required := map[string]string{
		"bank_account.bank":                    r.BankAccount.Bank,
		"bank_account.agency":                  r.BankAccount.Agency,
		"bank_account.account":                 r.BankAccount.Account,
		"bank_account.account_holder_name":     r.BankAccount.AccountHolderName,
		"bank_account.account_holder_document": r.BankAccount.AccountHolderDocument,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return errors.New(field + " is required")
		}
	}
	return nil
}

func (r CreateWithdrawRequest) ToInput() interfaces.CreateWithdrawInput {
	in := interfaces.CreateWithdrawInput{Amount: r.Amount}
	if r.BankAccount != nil {
		in.BankAccount = entities.BankAccount{
			Bank:                  r.BankAccount.Bank,
			Agency:                r.BankAccount.Agency,
			Account:               r.BankAccount.Account,
			AccountType:           r.BankAccount.AccountType,
			AccountHolderName:     r.BankAccount.AccountHolderName,
			AccountHolderDocument: r.BankAccount.AccountHolderDocument,
		}
	}
	return in
}
