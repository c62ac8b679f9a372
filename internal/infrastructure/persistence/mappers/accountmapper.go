package mappers

import (
	"fmt"

	"reinkjet/internal/domain/account"
	vo "reinkjet/internal/domain/account/value_objects"
	"reinkjet/internal/infrastructure/persistence/models"
)

// AccountMapper handles the conversion between Account domain entities and persistence models.
type AccountMapper interface {
	ToModel(a *account.Account) *models.AccountModel
	ToDomain(model *models.AccountModel) (*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToModel(a *account.Account) *models.AccountModel {
	company := a.Company()

	return &models.AccountModel{
		ID:             a.ID(),
		Username:       a.Username(),
		Email:          a.Email().String(),
		PasswordHash:   a.PasswordHash(),
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
		UpdatedAt:      a.UpdatedAt(),
		LastLogin:      a.LastLogin(),
	}
}

func (m *AccountMapperImpl) ToDomain(model *models.AccountModel) (*account.Account, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in account %d: %w", model.ID, err)
	}

	return account.ReconstructAccount(
		model.ID,
		model.Username,
		email,
		model.PasswordHash,
		model.FullName,
		model.Phone,
		account.CompanyProfile{
			Name:    model.CompanyName,
			CNPJ:    model.CompanyCNPJ,
			Address: model.CompanyAddress,
			City:    model.CompanyCity,
			State:   model.CompanyState,
			Zip:     model.CompanyZip,
		},
		model.ContractNumber,
		model.ContractType,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
		model.LastLogin,
	)
}
