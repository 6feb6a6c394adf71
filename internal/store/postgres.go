package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/TravisBoyd884/SecondSpark/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool, nil)
}

// CreateOrganization inserts a new organization and fills in its id.
func (s *PostgresStore) CreateOrganization(ctx context.Context, o *domain.Organization) error {
	args := pgx.NamedArgs{"name": o.Name}

	if err := s.pool.QueryRow(ctx, queryCreateOrganization, args).Scan(&o.ID); err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	return nil
}

// GetOrganization retrieves an organization by id.
func (s *PostgresStore) GetOrganization(ctx context.Context, id int64) (*domain.Organization, error) {
	o := &domain.Organization{}
	err := s.pool.QueryRow(ctx, queryGetOrganization, id).Scan(&o.ID, &o.Name)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrganizations returns all organizations.
func (s *PostgresStore) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := s.pool.Query(ctx, queryListOrganizations)
	if err != nil {
		return nil, fmt.Errorf("querying organizations: %w", err)
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating organizations: %w", err)
	}
	return orgs, nil
}

// UpdateOrganization renames an organization.
func (s *PostgresStore) UpdateOrganization(ctx context.Context, o *domain.Organization) error {
	args := pgx.NamedArgs{
		"organization_id": o.ID,
		"name":            o.Name,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateOrganization, args)
	if err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteOrganization removes an organization. Users and their items cascade.
func (s *PostgresStore) DeleteOrganization(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, queryDeleteOrganization, id); err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}
	return nil
}

// ListOrganizationUsers returns all users belonging to an organization.
func (s *PostgresStore) ListOrganizationUsers(ctx context.Context, orgID int64) ([]domain.User, error) {
	return s.queryUsers(ctx, queryListOrganizationUsers, orgID)
}

// ListOrganizationItems returns every item created by any user of an
// organization.
func (s *PostgresStore) ListOrganizationItems(ctx context.Context, orgID int64) ([]domain.Item, error) {
	return s.queryItems(ctx, queryListOrganizationItems, orgID)
}

// CreateUser inserts a new user and fills in its id.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	args := pgx.NamedArgs{
		"username":          u.Username,
		"password":          u.Password,
		"email":             u.Email,
		"organization_id":   u.OrganizationID,
		"organization_role": u.OrganizationRole,
		"ebay_account_id":   u.EbayAccountID,
		"etsy_account_id":   u.EtsyAccountID,
	}

	if err := s.pool.QueryRow(ctx, queryCreateUser, args).Scan(&u.ID); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id.
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	if err := scanUser(s.pool.QueryRow(ctx, queryGetUser, id), u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByUsername retrieves a user by username.
func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	if err := scanUser(s.pool.QueryRow(ctx, queryGetUserByUsername, username), u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns all users.
func (s *PostgresStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.queryUsers(ctx, queryListUsers)
}

// UpdateUser updates all mutable fields of a user.
func (s *PostgresStore) UpdateUser(ctx context.Context, u *domain.User) error {
	args := pgx.NamedArgs{
		"user_id":           u.ID,
		"username":          u.Username,
		"password":          u.Password,
		"email":             u.Email,
		"organization_id":   u.OrganizationID,
		"organization_role": u.OrganizationRole,
		"ebay_account_id":   u.EbayAccountID,
		"etsy_account_id":   u.EtsyAccountID,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateUser, args)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteUser removes a user. Their items and transactions cascade.
func (s *PostgresStore) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, queryDeleteUser, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// ValidateCredentials matches a username/password pair against the stored
// credential. Comparison happens in SQL; a miss is pgx.ErrNoRows.
func (s *PostgresStore) ValidateCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	u := &domain.User{}
	if err := scanUser(s.pool.QueryRow(ctx, queryValidateCredentials, username, password), u); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateItem inserts a new item and fills in its id.
func (s *PostgresStore) CreateItem(ctx context.Context, it *domain.Item) error {
	args := pgx.NamedArgs{
		"sku":         it.SKU,
		"title":       it.Title,
		"price":       it.Price,
		"description": it.Description,
		"category":    it.Category,
		"list_date":   it.ListDate,
		"quantity":    it.Quantity,
		"creator_id":  it.CreatorID,
	}
	if it.Price == "" {
		args["price"] = "0.00"
	}

	if err := s.pool.QueryRow(ctx, queryCreateItem, args).Scan(&it.ID); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// GetItem retrieves an item by id.
func (s *PostgresStore) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{}
	if err := scanItem(s.pool.QueryRow(ctx, queryGetItem, id), it); err != nil {
		return nil, err
	}
	return it, nil
}

// GetItemBySKU retrieves an item by its SKU.
func (s *PostgresStore) GetItemBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	it := &domain.Item{}
	if err := scanItem(s.pool.QueryRow(ctx, queryGetItemBySKU, sku), it); err != nil {
		return nil, err
	}
	return it, nil
}

// ListItems returns all items.
func (s *PostgresStore) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.queryItems(ctx, queryListItems)
}

// ListItemsByCreator returns items created by a given user.
func (s *PostgresStore) ListItemsByCreator(ctx context.Context, userID int64) ([]domain.Item, error) {
	return s.queryItems(ctx, queryListItemsByCreator, userID)
}

// UpdateItem updates all mutable fields of an item. Marketplace correlation
// ids are managed separately via SetItemMarketplaceIDs.
func (s *PostgresStore) UpdateItem(ctx context.Context, it *domain.Item) error {
	args := pgx.NamedArgs{
		"item_id":     it.ID,
		"sku":         it.SKU,
		"title":       it.Title,
		"price":       it.Price,
		"description": it.Description,
		"category":    it.Category,
		"list_date":   it.ListDate,
		"quantity":    it.Quantity,
	}
	if it.Price == "" {
		args["price"] = "0.00"
	}

	tag, err := s.pool.Exec(ctx, queryUpdateItem, args)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetItemMarketplaceIDs stores marketplace correlation ids after a sync.
// Nil pointers leave the corresponding column untouched.
func (s *PostgresStore) SetItemMarketplaceIDs(
	ctx context.Context,
	id int64,
	ebayOfferID, etsyListingID *string,
) error {
	args := pgx.NamedArgs{
		"item_id":         id,
		"ebay_offer_id":   ebayOfferID,
		"etsy_listing_id": etsyListingID,
	}

	if _, err := s.pool.Exec(ctx, querySetItemMarketplaceIDs, args); err != nil {
		return fmt.Errorf("setting item marketplace ids: %w", err)
	}
	return nil
}

// DeleteItem removes an item. Images and transaction links cascade.
func (s *PostgresStore) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, queryDeleteItem, id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// CreateTransaction inserts a new transaction and fills in its id.
func (s *PostgresStore) CreateTransaction(ctx context.Context, tr *domain.Transaction) error {
	args := pgx.NamedArgs{
		"sale_date":         tr.SaleDate,
		"total":             tr.Total,
		"tax":               tr.Tax,
		"seller_commission": tr.SellerCommission,
		"seller_id":         tr.SellerID,
	}

	if err := s.pool.QueryRow(ctx, queryCreateTransaction, args).Scan(&tr.ID); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by id.
func (s *PostgresStore) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	tr := &domain.Transaction{}
	err := s.pool.QueryRow(ctx, queryGetTransaction, id).Scan(
		&tr.ID, &tr.SaleDate, &tr.Total, &tr.Tax, &tr.SellerCommission, &tr.SellerID,
	)
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// ListTransactions returns all transactions, newest first.
func (s *PostgresStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.queryTransactions(ctx, queryListTransactions)
}

// ListTransactionsBySeller returns a seller's transactions, newest first.
func (s *PostgresStore) ListTransactionsBySeller(ctx context.Context, sellerID int64) ([]domain.Transaction, error) {
	return s.queryTransactions(ctx, queryListTransactionsBySeller, sellerID)
}

// ListTransactionsByItem returns every transaction an item was sold in.
func (s *PostgresStore) ListTransactionsByItem(ctx context.Context, itemID int64) ([]domain.Transaction, error) {
	return s.queryTransactions(ctx, queryListTransactionsByItem, itemID)
}

// UpdateTransaction updates a transaction's sale fields. The seller never
// changes after the fact.
func (s *PostgresStore) UpdateTransaction(ctx context.Context, tr *domain.Transaction) error {
	args := pgx.NamedArgs{
		"transaction_id":    tr.ID,
		"sale_date":         tr.SaleDate,
		"total":             tr.Total,
		"tax":               tr.Tax,
		"seller_commission": tr.SellerCommission,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateTransaction, args)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteTransaction removes a transaction. Item links cascade.
func (s *PostgresStore) DeleteTransaction(ctx context.Context, id int64) error {
	if _, err := s.pool.Exec(ctx, queryDeleteTransaction, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	return nil
}

// AddTransactionItem links an item to a transaction. Linking the same pair
// twice is a no-op.
func (s *PostgresStore) AddTransactionItem(ctx context.Context, ti *domain.TransactionItem) error {
	args := pgx.NamedArgs{
		"item_id":        ti.ItemID,
		"transaction_id": ti.TransactionID,
	}

	err := s.pool.QueryRow(ctx, queryAddTransactionItem, args).Scan(&ti.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		// already linked
		return nil
	}
	if err != nil {
		return fmt.Errorf("linking transaction item: %w", err)
	}
	return nil
}

// RemoveTransactionItem unlinks an item from a transaction.
func (s *PostgresStore) RemoveTransactionItem(ctx context.Context, transactionID, itemID int64) error {
	if _, err := s.pool.Exec(ctx, queryRemoveTransactionItem, transactionID, itemID); err != nil {
		return fmt.Errorf("unlinking transaction item: %w", err)
	}
	return nil
}

// ListTransactionLines returns the item rows linked to a transaction.
func (s *PostgresStore) ListTransactionLines(ctx context.Context, transactionID int64) ([]domain.TransactionLine, error) {
	rows, err := s.pool.Query(ctx, queryListTransactionLines, transactionID)
	if err != nil {
		return nil, fmt.Errorf("querying transaction lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.TransactionLine
	for rows.Next() {
		var l domain.TransactionLine
		if err := rows.Scan(
			&l.TransactionItemID, &l.ItemID, &l.Title, &l.Description, &l.Category,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction lines: %w", err)
	}
	return lines, nil
}

// AddItemImage attaches an uploaded image to an item.
func (s *PostgresStore) AddItemImage(ctx context.Context, img *domain.ItemImage) error {
	args := pgx.NamedArgs{
		"item_id":    img.ItemID,
		"image_url":  img.URL,
		"is_primary": img.IsPrimary,
	}

	if err := s.pool.QueryRow(ctx, queryAddItemImage, args).Scan(&img.ID, &img.CreatedAt); err != nil {
		return fmt.Errorf("adding item image: %w", err)
	}
	return nil
}

// ListItemImages returns an item's images, primary first.
func (s *PostgresStore) ListItemImages(ctx context.Context, itemID int64) ([]domain.ItemImage, error) {
	rows, err := s.pool.Query(ctx, queryListItemImages, itemID)
	if err != nil {
		return nil, fmt.Errorf("querying item images: %w", err)
	}
	defer rows.Close()

	var imgs []domain.ItemImage
	for rows.Next() {
		var img domain.ItemImage
		if err := rows.Scan(
			&img.ID, &img.ItemID, &img.URL, &img.IsPrimary, &img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning item image: %w", err)
		}
		imgs = append(imgs, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item images: %w", err)
	}
	return imgs, nil
}

// DeleteItemImage removes a stored image record.
func (s *PostgresStore) DeleteItemImage(ctx context.Context, imageID int64) error {
	if _, err := s.pool.Exec(ctx, queryDeleteItemImage, imageID); err != nil {
		return fmt.Errorf("deleting item image: %w", err)
	}
	return nil
}

// row is the shared surface of pgx.Row and pgx.Rows.
type row interface {
	Scan(dest ...any) error
}

func scanUser(r row, u *domain.User) error {
	return r.Scan(
		&u.ID, &u.Username, &u.Password, &u.Email,
		&u.OrganizationID, &u.OrganizationRole, &u.EbayAccountID, &u.EtsyAccountID,
	)
}

func scanItem(r row, it *domain.Item) error {
	return r.Scan(
		&it.ID, &it.SKU, &it.Title, &it.Price,
		&it.Description, &it.Category, &it.ListDate, &it.Quantity, &it.CreatorID,
		&it.EbayOfferID, &it.EtsyListingID,
	)
}

func (s *PostgresStore) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func (s *PostgresStore) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var trs []domain.Transaction
	for rows.Next() {
		var tr domain.Transaction
		if err := rows.Scan(
			&tr.ID, &tr.SaleDate, &tr.Total, &tr.Tax, &tr.SellerCommission, &tr.SellerID,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		trs = append(trs, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return trs, nil
}

func (s *PostgresStore) queryItems(ctx context.Context, query string, args ...any) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}
