package request

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validWithdrawRequest() CreateWithdrawRequest {
	return CreateWithdrawRequest{
		Amount: decimal.NewFromInt(50),
		BankAccount: &BankAccountRequest{
			Bank:                  "001",
			Agency:                "1234",
			Account:               "56789-0",
			AccountType:           "corrente",
			AccountHolderName:     "Fulano",
			AccountHolderDocument: "12345678900",
		},
	}
}

func TestCreateWithdrawRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := validWithdrawRequest().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nil bank account", func(t *testing.T) {
		r := validWithdrawRequest()
		r.BankAccount = nil
		err := r.Validate()
		if err == nil || err.Error() != "bank_account is required" {
			t.Fatalf("expected bank_account is required, got %v", err)
		}
	})

	t.Run("blank required fields", func(t *testing.T) {
		cases := []struct {
			name  string
			mut   func(*BankAccountRequest)
			field string
		}{
			{"bank", func(a *BankAccountRequest) { a.Bank = "" }, "bank_account.bank"},
			{"agency", func(a *BankAccountRequest) { a.Agency = "  " }, "bank_account.agency"},
			{"account", func(a *BankAccountRequest) { a.Account = "" }, "bank_account.account"},
			{"holder name", func(a *BankAccountRequest) { a.AccountHolderName = "" }, "bank_account.account_holder_name"},
			{"holder document", func(a *BankAccountRequest) { a.AccountHolderDocument = " " }, "bank_account.account_holder_document"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r := validWithdrawRequest()
				tc.mut(r.BankAccount)
				err := r.Validate()
				if err == nil || !strings.Contains(err.Error(), tc.field) {
					t.Fatalf("expected error naming %s, got %v", tc.field, err)
				}
			})
		}
	})

	t.Run("account type is optional", func(t *testing.T) {
		r := validWithdrawRequest()
		r.BankAccount.AccountType = ""
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCreateWithdrawRequest_ToInput(t *testing.T) {
	r := validWithdrawRequest()
	in := r.ToInput()

	if !in.Amount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("amount not mapped: %s", in.Amount)
	}
	if in.BankAccount.Bank != "001" || in.BankAccount.Agency != "1234" || in.BankAccount.Account != "56789-0" {
		t.Fatalf("bank account not mapped: %+v", in.BankAccount)
	}
	if in.BankAccount.AccountHolderName != "Fulano" || in.BankAccount.AccountHolderDocument != "12345678900" {
		t.Fatalf("holder fields not mapped: %+v", in.BankAccount)
	}

	r.BankAccount = nil
	in = r.ToInput()
	if in.BankAccount.Bank != "" {
		t.Fatalf("nil account must map to zero value: %+v", in.BankAccount)
	}
}

func TestCreatePixRequest_ToInput(t *testing.T) {
	r := CreatePixRequest{
		Amount:      decimal.RequireFromString("100.50"),
		Description: "Pedido 42",
		MerchantID:  "m-1",
		Currency:    "BRL",
		OrderID:     "ord-1",
		Payer:       &PixPayerRequest{Name: "Fulano", CpfCnpj: "12345678900"},
		ExpiresIn:   600,
	}

	in := r.ToInput()
	if !in.Amount.Equal(decimal.RequireFromString("100.50")) {
		t.Fatalf("amount not mapped: %s", in.Amount)
	}
	if in.Description != "Pedido 42" || in.MerchantID != "m-1" || in.OrderID != "ord-1" || in.ExpiresIn != 600 {
		t.Fatalf("fields not mapped: %+v", in)
	}
	if in.Payer == nil || in.Payer.Name != "Fulano" || in.Payer.CpfCnpj != "12345678900" {
		t.Fatalf("payer not mapped: %+v", in.Payer)
	}

	r.Payer = nil
	if in := r.ToInput(); in.Payer != nil {
		t.Fatalf("nil payer must stay nil")
	}
}
