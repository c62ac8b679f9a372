package dto

import (
	"time"

	"reinkjet/internal/domain/account"
)

type AccountDTO struct {
	ID             uint       `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Phone          string     `json:"phone,omitempty"`
	CompanyName    string     `json:"company_name"`
	CompanyCNPJ    string     `json:"company_cnpj,omitempty"`
	CompanyAddress string     `json:"company_address,omitempty"`
	CompanyCity    string     `json:"company_city,omitempty"`
	CompanyState   string     `json:"company_state,omitempty"`
	CompanyZip     string     `json:"company_zip,omitempty"`
	ContractNumber string     `json:"contract_number,omitempty"`
	ContractType   string     `json:"contract_type"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

func ToAccountDTO(a *account.Account) *AccountDTO {
	if a == nil {
		return nil
	}

	company := a.Company()

	return &AccountDTO{
		ID:             a.ID(),
		Username:       a.Username(),
		Email:          a.Email().String(),
		FullName:       a.FullName(),
		Phone:          a.Phone(),
		CompanyName:    company.Name,
		CompanyCNPJ:    company.CNPJ,
		CompanyAddress: company.Address,
		CompanyCity:    company.City,
		CompanyState:   company.State,
		CompanyZip:     company.Zip,
		ContractNumber: a.ContractNumber(),
		ContractType:   a.ContractType(),
		IsActive:       a.IsActive(),
		CreatedAt:      a.CreatedAt(),
		LastLogin:      a.LastLogin(),
	}
}
