// Package store defines the datastore abstraction for SecondSpark.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// Store defines all data access operations for SecondSpark.
//
// Lookups return pgx.ErrNoRows when nothing matches; callers translate that
// to their own not-found semantics.
type Store interface {
	// Organizations
	CreateOrganization(ctx context.Context, o *domain.Organization) error
	GetOrganization(ctx context.Context, id int64) (*domain.Organization, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	UpdateOrganization(ctx context.Context, o *domain.Organization) error
	DeleteOrganization(ctx context.Context, id int64) error
	ListOrganizationUsers(ctx context.Context, orgID int64) ([]domain.User, error)
	ListOrganizationItems(ctx context.Context, orgID int64) ([]domain.Item, error)

	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
	DeleteUser(ctx context.Context, id int64) error
	// ValidateCredentials matches username and stored password exactly.
	// Returns pgx.ErrNoRows when either is wrong; callers must not
	// distinguish the two cases.
	ValidateCredentials(ctx context.Context, username, password string) (*domain.User, error)

	// Items
	CreateItem(ctx context.Context, it *domain.Item) error
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	GetItemBySKU(ctx context.Context, sku string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListItemsByCreator(ctx context.Context, userID int64) ([]domain.Item, error)
	UpdateItem(ctx context.Context, it *domain.Item) error
	// SetItemMarketplaceIDs stores correlation ids returned by a
	// marketplace sync. A nil pointer leaves that column untouched.
	SetItemMarketplaceIDs(ctx context.Context, id int64, ebayOfferID, etsyListingID *string) error
	DeleteItem(ctx context.Context, id int64) error

	// Transactions
	CreateTransaction(ctx context.Context, tr *domain.Transaction) error
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsBySeller(ctx context.Context, sellerID int64) ([]domain.Transaction, error)
	ListTransactionsByItem(ctx context.Context, itemID int64) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, tr *domain.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error
	AddTransactionItem(ctx context.Context, ti *domain.TransactionItem) error
	RemoveTransactionItem(ctx context.Context, transactionID, itemID int64) error
	ListTransactionLines(ctx context.Context, transactionID int64) ([]domain.TransactionLine, error)

	// Images
	AddItemImage(ctx context.Context, img *domain.ItemImage) error
	ListItemImages(ctx context.Context, itemID int64) ([]domain.ItemImage, error)
	DeleteItemImage(ctx context.Context, imageID int64) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
