package account

import (
	"fmt"
	"strings"
	"time"

	vo "reinkjet/internal/domain/account/value_objects"
)

// CompanyProfile groups the customer company fields kept on an account.
type CompanyProfile struct {
	Name    string
	CNPJ    string
	Address string
	City    string
	State   string
	Zip     string
}

// Account is the aggregate root for a customer account. The password is
// stored only as a bcrypt hash and never exposed through getters other
// than PasswordHash.
type Account struct {
	id             uint
	username       string
	email          *vo.Email
	passwordHash   string
	fullName       string
	phone          string
	company        CompanyProfile
	contractNumber string
	contractType   string
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
	lastLogin      *time.Time
}

const defaultContractType = "outsourcing"

var validContractTypes = map[string]bool{
	"outsourcing": true,
	"supplies":    true,
	"both":        true,
}

func NewAccount(
	username string,
	email *vo.Email,
	passwordHash string,
	fullName string,
	company CompanyProfile,
) (*Account, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(company.Name) == "" {
		return nil, fmt.Errorf("company name is required")
	}

	now := time.Now().UTC()

	return &Account{
		username:     strings.TrimSpace(username),
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		company:      company,
		contractType: defaultContractType,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAccount(
	id uint,
	username string,
	email *vo.Email,
	passwordHash string,
	fullName string,
	phone string,
	company CompanyProfile,
	contractNumber string,
	contractType string,
	active bool,
	createdAt, updatedAt time.Time,
	lastLogin *time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &Account{
		id:             id,
		username:       username,
		email:          email,
		passwordHash:   passwordHash,
		fullName:       fullName,
		phone:          phone,
		company:        company,
		contractNumber: contractNumber,
		contractType:   contractType,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		lastLogin:      lastLogin,
	}, nil
}

func (a *Account) ID() uint { return a.id }
func (a *Account) Username() string { return a.username }
func (a *Account) Email() *vo.Email { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) FullName() string { return a.fullName }
func (a *Account) Phone() string { return a.phone }
func (a *Account) Company() CompanyProfile { return a.company }
func (a *Account) ContractNumber() string { return a.contractNumber }
func (a *Account) ContractType() string { return a.contractType }
func (a *Account) IsActive() bool { return a.active }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }
func (a *Account) LastLogin() *time.Time { return a.lastLogin }

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// ProfileUpdate carries the whitelisted profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdate struct {
	FullName       *string
	Phone          *string
	CompanyName    *string
	CompanyCNPJ    *string
	CompanyAddress *string
	CompanyCity    *string
	CompanyState   *string
	CompanyZip     *string
}

func (a *Account) UpdateProfile(update ProfileUpdate) {
	if update.FullName != nil {
		a.fullName = *update.FullName
	}
	if update.Phone != nil {
		a.phone = *update.Phone
	}
	if update.CompanyName != nil {
		a.company.Name = *update.CompanyName
	}
	if update.CompanyCNPJ != nil {
		a.company.CNPJ = *update.CompanyCNPJ
	}
	if update.CompanyAddress != nil {
		a.company.Address = *update.CompanyAddress
	}
	if update.CompanyCity != nil {
		a.company.City = *update.CompanyCity
	}
	if update.CompanyState != nil {
		a.company.State = *update.CompanyState
	}
	if update.CompanyZip != nil {
		a.company.Zip = *update.CompanyZip
	}
	a.touch()
}

// ChangeEmail replaces the account email. Uniqueness against other
// accounts is checked by the use case before calling this.
func (a *Account) ChangeEmail(email *vo.Email) error {
	if email == nil {
		return fmt.Errorf("email is required")
	}
	a.email = email
	a.touch()
	return nil
}

func (a *Account) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	a.passwordHash = hash
	a.touch()
	return nil
}

func (a *Account) ChangeContractType(contractType string) error {
	if !validContractTypes[contractType] {
		return fmt.Errorf("invalid contract type: %s", contractType)
	}
	a.contractType = contractType
	a.touch()
	return nil
}

func (a *Account) SetContractNumber(number string) {
	a.contractNumber = number
	a.touch()
}

// RecordLogin stamps the last successful authentication time.
func (a *Account) RecordLogin() {
	now := time.Now().UTC()
	a.lastLogin = &now
}

func (a *Account) Deactivate() {
	a.active = false
	a.touch()
}

func (a *Account) Activate() {
	a.active = true
	a.touch()
}

func (a *Account) touch() {
	a.updatedAt = time.Now().UTC()
}
