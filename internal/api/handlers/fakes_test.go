package handlers_test

import (
	"context"
	"fmt"

	"github.com/TravisBoyd884/SecondSpark/internal/marketplace"
	"github.com/TravisBoyd884/SecondSpark/internal/store"
	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

// fakeStore implements store.Store through per-method hooks. A call to a
// method without a hook fails loudly, so each test declares exactly the
// store traffic it expects.
type fakeStore struct {
	createOrganization    func(ctx context.Context, o *domain.Organization) error
	getOrganization       func(ctx context.Context, id int64) (*domain.Organization, error)
	listOrganizations     func(ctx context.Context) ([]domain.Organization, error)
	updateOrganization    func(ctx context.Context, o *domain.Organization) error
	deleteOrganization    func(ctx context.Context, id int64) error
	listOrganizationUsers func(ctx context.Context, orgID int64) ([]domain.User, error)
	listOrganizationItems func(ctx context.Context, orgID int64) ([]domain.Item, error)

	createUser          func(ctx context.Context, u *domain.User) error
	getUser             func(ctx context.Context, id int64) (*domain.User, error)
	getUserByUsername   func(ctx context.Context, username string) (*domain.User, error)
	listUsers           func(ctx context.Context) ([]domain.User, error)
	updateUser          func(ctx context.Context, u *domain.User) error
	deleteUser          func(ctx context.Context, id int64) error
	validateCredentials func(ctx context.Context, username, password string) (*domain.User, error)

	createItem            func(ctx context.Context, it *domain.Item) error
	getItem               func(ctx context.Context, id int64) (*domain.Item, error)
	getItemBySKU          func(ctx context.Context, sku string) (*domain.Item, error)
	listItems             func(ctx context.Context) ([]domain.Item, error)
	listItemsByCreator    func(ctx context.Context, userID int64) ([]domain.Item, error)
	updateItem            func(ctx context.Context, it *domain.Item) error
	setItemMarketplaceIDs func(ctx context.Context, id int64, ebayOfferID, etsyListingID *string) error
	deleteItem            func(ctx context.Context, id int64) error

	createTransaction        func(ctx context.Context, tr *domain.Transaction) error
	getTransaction           func(ctx context.Context, id int64) (*domain.Transaction, error)
	listTransactions         func(ctx context.Context) ([]domain.Transaction, error)
	listTransactionsBySeller func(ctx context.Context, sellerID int64) ([]domain.Transaction, error)
	listTransactionsByItem   func(ctx context.Context, itemID int64) ([]domain.Transaction, error)
	updateTransaction        func(ctx context.Context, tr *domain.Transaction) error
	deleteTransaction        func(ctx context.Context, id int64) error
	addTransactionItem       func(ctx context.Context, ti *domain.TransactionItem) error
	removeTransactionItem    func(ctx context.Context, transactionID, itemID int64) error
	listTransactionLines     func(ctx context.Context, transactionID int64) ([]domain.TransactionLine, error)

	addItemImage    func(ctx context.Context, img *domain.ItemImage) error
	listItemImages  func(ctx context.Context, itemID int64) ([]domain.ItemImage, error)
	deleteItemImage func(ctx context.Context, imageID int64) error

	migrate func(ctx context.Context) error
	ping    func(ctx context.Context) error
}

var _ store.Store = (*fakeStore)(nil)

func unexpected(method string) error {
	return fmt.Errorf("unexpected store call: %s", method)
}

func (f *fakeStore) CreateOrganization(ctx context.Context, o *domain.Organization) error {
	if f.createOrganization == nil {
		return unexpected("CreateOrganization")
	}
	return f.createOrganization(ctx, o)
}

func (f *fakeStore) GetOrganization(ctx context.Context, id int64) (*domain.Organization, error) {
	if f.getOrganization == nil {
		return nil, unexpected("GetOrganization")
	}
	return f.getOrganization(ctx, id)
}

func (f *fakeStore) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	if f.listOrganizations == nil {
		return nil, unexpected("ListOrganizations")
	}
	return f.listOrganizations(ctx)
}

func (f *fakeStore) UpdateOrganization(ctx context.Context, o *domain.Organization) error {
	if f.updateOrganization == nil {
		return unexpected("UpdateOrganization")
	}
	return f.updateOrganization(ctx, o)
}

func (f *fakeStore) DeleteOrganization(ctx context.Context, id int64) error {
	if f.deleteOrganization == nil {
		return unexpected("DeleteOrganization")
	}
	return f.deleteOrganization(ctx, id)
}

func (f *fakeStore) ListOrganizationUsers(ctx context.Context, orgID int64) ([]domain.User, error) {
	if f.listOrganizationUsers == nil {
		return nil, unexpected("ListOrganizationUsers")
	}
	return f.listOrganizationUsers(ctx, orgID)
}

func (f *fakeStore) ListOrganizationItems(ctx context.Context, orgID int64) ([]domain.Item, error) {
	if f.listOrganizationItems == nil {
		return nil, unexpected("ListOrganizationItems")
	}
	return f.listOrganizationItems(ctx, orgID)
}

func (f *fakeStore) CreateUser(ctx context.Context, u *domain.User) error {
	if f.createUser == nil {
		return unexpected("CreateUser")
	}
	return f.createUser(ctx, u)
}

func (f *fakeStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if f.getUser == nil {
		return nil, unexpected("GetUser")
	}
	return f.getUser(ctx, id)
}

func (f *fakeStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.getUserByUsername == nil {
		return nil, unexpected("GetUserByUsername")
	}
	return f.getUserByUsername(ctx, username)
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	if f.listUsers == nil {
		return nil, unexpected("ListUsers")
	}
	return f.listUsers(ctx)
}

func (f *fakeStore) UpdateUser(ctx context.Context, u *domain.User) error {
	if f.updateUser == nil {
		return unexpected("UpdateUser")
	}
	return f.updateUser(ctx, u)
}

func (f *fakeStore) DeleteUser(ctx context.Context, id int64) error {
	if f.deleteUser == nil {
		return unexpected("DeleteUser")
	}
	return f.deleteUser(ctx, id)
}

func (f *fakeStore) ValidateCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	if f.validateCredentials == nil {
		return nil, unexpected("ValidateCredentials")
	}
	return f.validateCredentials(ctx, username, password)
}

func (f *fakeStore) CreateItem(ctx context.Context, it *domain.Item) error {
	if f.createItem == nil {
		return unexpected("CreateItem")
	}
	return f.createItem(ctx, it)
}

func (f *fakeStore) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	if f.getItem == nil {
		return nil, unexpected("GetItem")
	}
	return f.getItem(ctx, id)
}

func (f *fakeStore) GetItemBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	if f.getItemBySKU == nil {
		return nil, unexpected("GetItemBySKU")
	}
	return f.getItemBySKU(ctx, sku)
}

func (f *fakeStore) ListItems(ctx context.Context) ([]domain.Item, error) {
	if f.listItems == nil {
		return nil, unexpected("ListItems")
	}
	return f.listItems(ctx)
}

func (f *fakeStore) ListItemsByCreator(ctx context.Context, userID int64) ([]domain.Item, error) {
	if f.listItemsByCreator == nil {
		return nil, unexpected("ListItemsByCreator")
	}
	return f.listItemsByCreator(ctx, userID)
}

func (f *fakeStore) UpdateItem(ctx context.Context, it *domain.Item) error {
	if f.updateItem == nil {
		return unexpected("UpdateItem")
	}
	return f.updateItem(ctx, it)
}

func (f *fakeStore) SetItemMarketplaceIDs(ctx context.Context, id int64, ebayOfferID, etsyListingID *string) error {
	if f.setItemMarketplaceIDs == nil {
		return unexpected("SetItemMarketplaceIDs")
	}
	return f.setItemMarketplaceIDs(ctx, id, ebayOfferID, etsyListingID)
}

func (f *fakeStore) DeleteItem(ctx context.Context, id int64) error {
	if f.deleteItem == nil {
		return unexpected("DeleteItem")
	}
	return f.deleteItem(ctx, id)
}

func (f *fakeStore) CreateTransaction(ctx context.Context, tr *domain.Transaction) error {
	if f.createTransaction == nil {
		return unexpected("CreateTransaction")
	}
	return f.createTransaction(ctx, tr)
}

func (f *fakeStore) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	if f.getTransaction == nil {
		return nil, unexpected("GetTransaction")
	}
	return f.getTransaction(ctx, id)
}

func (f *fakeStore) ListTransactionsBySeller(ctx context.Context, sellerID int64) ([]domain.Transaction, error) {
	if f.listTransactionsBySeller == nil {
		return nil, unexpected("ListTransactionsBySeller")
	}
	return f.listTransactionsBySeller(ctx, sellerID)
}

func (f *fakeStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if f.listTransactions == nil {
		return nil, unexpected("ListTransactions")
	}
	return f.listTransactions(ctx)
}

func (f *fakeStore) ListTransactionsByItem(ctx context.Context, itemID int64) ([]domain.Transaction, error) {
	if f.listTransactionsByItem == nil {
		return nil, unexpected("ListTransactionsByItem")
	}
	return f.listTransactionsByItem(ctx, itemID)
}

func (f *fakeStore) UpdateTransaction(ctx context.Context, tr *domain.Transaction) error {
	if f.updateTransaction == nil {
		return unexpected("UpdateTransaction")
	}
	return f.updateTransaction(ctx, tr)
}

func (f *fakeStore) DeleteTransaction(ctx context.Context, id int64) error {
	if f.deleteTransaction == nil {
		return unexpected("DeleteTransaction")
	}
	return f.deleteTransaction(ctx, id)
}

func (f *fakeStore) AddTransactionItem(ctx context.Context, ti *domain.TransactionItem) error {
	if f.addTransactionItem == nil {
		return unexpected("AddTransactionItem")
	}
	return f.addTransactionItem(ctx, ti)
}

func (f *fakeStore) RemoveTransactionItem(ctx context.Context, transactionID, itemID int64) error {
	if f.removeTransactionItem == nil {
		return unexpected("RemoveTransactionItem")
	}
	return f.removeTransactionItem(ctx, transactionID, itemID)
}

func (f *fakeStore) ListTransactionLines(ctx context.Context, transactionID int64) ([]domain.TransactionLine, error) {
	if f.listTransactionLines == nil {
		return nil, unexpected("ListTransactionLines")
	}
	return f.listTransactionLines(ctx, transactionID)
}

func (f *fakeStore) AddItemImage(ctx context.Context, img *domain.ItemImage) error {
	if f.addItemImage == nil {
		return unexpected("AddItemImage")
	}
	return f.addItemImage(ctx, img)
}

func (f *fakeStore) ListItemImages(ctx context.Context, itemID int64) ([]domain.ItemImage, error) {
	if f.listItemImages == nil {
		return nil, unexpected("ListItemImages")
	}
	return f.listItemImages(ctx, itemID)
}

func (f *fakeStore) DeleteItemImage(ctx context.Context, imageID int64) error {
	if f.deleteItemImage == nil {
		return unexpected("DeleteItemImage")
	}
	return f.deleteItemImage(ctx, imageID)
}

func (f *fakeStore) Migrate(ctx context.Context) error {
	if f.migrate == nil {
		return unexpected("Migrate")
	}
	return f.migrate(ctx)
}

func (f *fakeStore) Ping(ctx context.Context) error {
	if f.ping == nil {
		return unexpected("Ping")
	}
	return f.ping(ctx)
}

// fakeSyncClient records sync calls and returns canned results.
type fakeSyncClient struct {
	createCalls []marketplace.ListingItem
	deleteCalls []marketplace.ListingItem
	result      *marketplace.SyncResult
	createErr   error
	deleteErr   error
}

func (f *fakeSyncClient) SyncItemCreateOrUpdate(
	_ context.Context,
	item marketplace.ListingItem,
) (*marketplace.SyncResult, error) {
	f.createCalls = append(f.createCalls, item)
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.result != nil {
		return f.result, nil
	}
	return &marketplace.SyncResult{}, nil
}

func (f *fakeSyncClient) SyncItemDelete(_ context.Context, item marketplace.ListingItem) error {
	f.deleteCalls = append(f.deleteCalls, item)
	return f.deleteErr
}
