package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// Context keys
	ContextKeyAccountID = "account_id"
	ContextKeyRequestID = "request_id"

	// Account status
	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"

	// Contract types
	ContractTypeOutsourcing = "outsourcing"
	ContractTypeSupplies    = "supplies"
	ContractTypeBoth        = "both"

	// Database table names
	TableAccounts      = "accounts"
	TableEquipment     = "equipment"
	TableTickets       = "tickets"
	TableTicketHistory = "ticket_history"
	TableAttachments   = "attachments"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
