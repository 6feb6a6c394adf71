package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.
//
// Prices are NUMERIC in the schema but travel through the application as
// strings, so every item SELECT casts price::text and inserts pass the
// string straight through.

// Organization queries.
const (
	queryCreateOrganization = `
		INSERT INTO organizations (name)
		VALUES (@name)
		RETURNING organization_id`

	queryGetOrganization = `
		SELECT organization_id, name
		FROM organizations
		WHERE organization_id = $1`

	queryListOrganizations = `
		SELECT organization_id, name
		FROM organizations
		ORDER BY organization_id`

	queryUpdateOrganization = `
		UPDATE organizations SET
			name = @name
		WHERE organization_id = @organization_id`

	queryDeleteOrganization = `
		DELETE FROM organizations
		WHERE organization_id = $1`
)

// User queries.
const (
	userColumns = `user_id, username, password, email,
		organization_id, organization_role, ebay_account_id, etsy_account_id`

	queryCreateUser = `
		INSERT INTO app_users (
			username, password, email,
			organization_id, organization_role,
			ebay_account_id, etsy_account_id
		) VALUES (
			@username, @password, @email,
			@organization_id, @organization_role,
			@ebay_account_id, @etsy_account_id
		)
		RETURNING user_id`

	queryGetUser = `
		SELECT ` + userColumns + `
		FROM app_users
		WHERE user_id = $1`

	queryGetUserByUsername = `
		SELECT ` + userColumns + `
		FROM app_users
		WHERE username = $1`

	queryListUsers = `
		SELECT ` + userColumns + `
		FROM app_users
		ORDER BY user_id`

	queryListOrganizationUsers = `
		SELECT ` + userColumns + `
		FROM app_users
		WHERE organization_id = $1
		ORDER BY user_id`

	queryUpdateUser = `
		UPDATE app_users SET
			username          = @username,
			password          = @password,
			email             = @email,
			organization_id   = @organization_id,
			organization_role = @organization_role,
			ebay_account_id   = @ebay_account_id,
			etsy_account_id   = @etsy_account_id
		WHERE user_id = @user_id`

	queryDeleteUser = `
		DELETE FROM app_users
		WHERE user_id = $1`

	queryValidateCredentials = `
		SELECT ` + userColumns + `
		FROM app_users
		WHERE username = $1 AND password = $2`
)

// Item queries.
const (
	itemColumns = `item_id, sku, title, price::text,
		COALESCE(description, ''), COALESCE(category, ''), list_date, quantity, creator_id,
		COALESCE(ebay_offer_id, ''), COALESCE(etsy_listing_id, '')`

	queryCreateItem = `
		INSERT INTO items (
			sku, title, price, description, category,
			list_date, quantity, creator_id
		) VALUES (
			@sku, @title, @price::numeric, NULLIF(@description, ''), NULLIF(@category, ''),
			@list_date, @quantity, @creator_id
		)
		RETURNING item_id`

	queryGetItem = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE item_id = $1`

	queryGetItemBySKU = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE sku = $1`

	queryListItems = `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY item_id`

	queryListItemsByCreator = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE creator_id = $1
		ORDER BY item_id`

	queryListOrganizationItems = `
		SELECT i.item_id, i.sku, i.title, i.price::text,
			COALESCE(i.description, ''), COALESCE(i.category, ''), i.list_date, i.quantity, i.creator_id,
			COALESCE(i.ebay_offer_id, ''), COALESCE(i.etsy_listing_id, '')
		FROM items i
		JOIN app_users u ON u.user_id = i.creator_id
		WHERE u.organization_id = $1
		ORDER BY i.item_id`

	queryUpdateItem = `
		UPDATE items SET
			sku         = @sku,
			title       = @title,
			price       = @price::numeric,
			description = NULLIF(@description, ''),
			category    = NULLIF(@category, ''),
			list_date   = @list_date,
			quantity    = @quantity
		WHERE item_id = @item_id`

	querySetItemMarketplaceIDs = `
		UPDATE items SET
			ebay_offer_id   = COALESCE(@ebay_offer_id, ebay_offer_id),
			etsy_listing_id = COALESCE(@etsy_listing_id, etsy_listing_id)
		WHERE item_id = @item_id`

	queryDeleteItem = `
		DELETE FROM items
		WHERE item_id = $1`
)

// Transaction queries.
const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			sale_date, total, tax, seller_commission, seller_id
		) VALUES (
			@sale_date, @total, @tax, @seller_commission, @seller_id
		)
		RETURNING transaction_id`

	queryGetTransaction = `
		SELECT transaction_id, sale_date, total, tax, seller_commission, seller_id
		FROM transactions
		WHERE transaction_id = $1`

	queryListTransactions = `
		SELECT transaction_id, sale_date, total, tax, seller_commission, seller_id
		FROM transactions
		ORDER BY sale_date DESC, transaction_id DESC`

	queryListTransactionsBySeller = `
		SELECT transaction_id, sale_date, total, tax, seller_commission, seller_id
		FROM transactions
		WHERE seller_id = $1
		ORDER BY sale_date DESC, transaction_id DESC`

	queryListTransactionsByItem = `
		SELECT t.transaction_id, t.sale_date, t.total, t.tax, t.seller_commission, t.seller_id
		FROM transactions t
		JOIN transaction_items ti ON ti.transaction_id = t.transaction_id
		WHERE ti.item_id = $1
		ORDER BY t.sale_date DESC, t.transaction_id DESC`

	queryUpdateTransaction = `
		UPDATE transactions SET
			sale_date         = @sale_date,
			total             = @total,
			tax               = @tax,
			seller_commission = @seller_commission
		WHERE transaction_id = @transaction_id`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE transaction_id = $1`

	queryAddTransactionItem = `
		INSERT INTO transaction_items (item_id, transaction_id)
		VALUES (@item_id, @transaction_id)
		ON CONFLICT (item_id, transaction_id) DO NOTHING
		RETURNING transaction_item_id`

	queryRemoveTransactionItem = `
		DELETE FROM transaction_items
		WHERE transaction_id = $1 AND item_id = $2`

	queryListTransactionLines = `
		SELECT ti.transaction_item_id, i.item_id, i.title,
			COALESCE(i.description, ''), COALESCE(i.category, '')
		FROM transaction_items ti
		JOIN items i ON i.item_id = ti.item_id
		WHERE ti.transaction_id = $1
		ORDER BY ti.transaction_item_id`
)

// Image queries.
const (
	queryAddItemImage = `
		INSERT INTO item_images (item_id, image_url, is_primary)
		VALUES (@item_id, @image_url, @is_primary)
		RETURNING image_id, created_at`

	queryListItemImages = `
		SELECT image_id, item_id, image_url, is_primary, created_at
		FROM item_images
		WHERE item_id = $1
		ORDER BY is_primary DESC, image_id`

	queryDeleteItemImage = `
		DELETE FROM item_images
		WHERE image_id = $1`
)
