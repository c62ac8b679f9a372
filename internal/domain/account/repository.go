package account

import "context"

type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, accountID uint) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// GetByIdentifier resolves a login identifier that may be either a
	// username or an email address.
	GetByIdentifier(ctx context.Context, identifier string) (*Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByEmailExcluding checks email uniqueness ignoring the given
	// account, for profile email changes.
	ExistsByEmailExcluding(ctx context.Context, email string, accountID uint) (bool, error)
}
