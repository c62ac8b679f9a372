package auth

import (
	"reinkjet/internal/application/account/usecases"
)

type RegisterRequest struct {
	Username       string `json:"username" binding:"required,min=3,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	FullName       string `json:"full_name" binding:"required,max=120"`
	Phone          string `json:"phone" binding:"omitempty,max=30"`
	CompanyName    string `json:"company_name" binding:"omitempty,max=120"`
	CompanyCNPJ    string `json:"company_cnpj" binding:"omitempty,max=20"`
	CompanyAddress string `json:"company_address" binding:"omitempty,max=255"`
	CompanyCity    string `json:"company_city" binding:"omitempty,max=80"`
	CompanyState   string `json:"company_state" binding:"omitempty,max=2"`
	CompanyZip     string `json:"company_zip" binding:"omitempty,max=10"`
	ContractNumber string `json:"contract_number" binding:"omitempty,max=50"`
	ContractType   string `json:"contract_type" binding:"omitempty,oneof=outsourcing supplies both"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterAccountCommand {
	return usecases.RegisterAccountCommand{
		Username:       r.Username,
		Email:          r.Email,
		Password:       r.Password,
		FullName:       r.FullName,
		Phone:          r.Phone,
		CompanyName:    r.CompanyName,
		CompanyCNPJ:    r.CompanyCNPJ,
		CompanyAddress: r.CompanyAddress,
		CompanyCity:    r.CompanyCity,
		CompanyState:   r.CompanyState,
		CompanyZip:     r.CompanyZip,
		ContractNumber: r.ContractNumber,
		ContractType:   r.ContractType,
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName       *string `json:"full_name" binding:"omitempty,max=120"`
	Phone          *string `json:"phone" binding:"omitempty,max=30"`
	Email          *string `json:"email" binding:"omitempty,email"`
	CompanyName    *string `json:"company_name" binding:"omitempty,max=120"`
	CompanyCNPJ    *string `json:"company_cnpj" binding:"omitempty,max=20"`
	CompanyAddress *string `json:"company_address" binding:"omitempty,max=255"`
	CompanyCity    *string `json:"company_city" binding:"omitempty,max=80"`
	CompanyState   *string `json:"company_state" binding:"omitempty,max=2"`
	CompanyZip     *string `json:"company_zip" binding:"omitempty,max=10"`
}

func (r *UpdateProfileRequest) ToCommand(accountID uint) usecases.UpdateProfileCommand {
	return usecases.UpdateProfileCommand{
		AccountID:      accountID,
		FullName:       r.FullName,
		Phone:          r.Phone,
		Email:          r.Email,
		CompanyName:    r.CompanyName,
		CompanyCNPJ:    r.CompanyCNPJ,
		CompanyAddress: r.CompanyAddress,
		CompanyCity:    r.CompanyCity,
		CompanyState:   r.CompanyState,
		CompanyZip:     r.CompanyZip,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type AuthResponse struct {
	Account     interface{} `json:"account"`
	AccessToken string      `json:"access_token"`
}
