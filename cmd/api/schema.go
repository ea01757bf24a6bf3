package main

import "database/sql"

// ensureSchema creates the tables the service needs. The UNIQUE constraint on
// order_number backstops the probabilistic order-number generator.
func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			sku TEXT,
			category TEXT,
			brand TEXT,
			image_url TEXT,
			my_cost NUMERIC NOT NULL DEFAULT 0,
			selling_price NUMERIC NOT NULL DEFAULT 0,
			markup_percentage NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			is_affiliate BOOLEAN NOT NULL DEFAULT FALSE,
			affiliate_link TEXT,
			affiliate_commission_rate NUMERIC,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL UNIQUE REFERENCES products(id) ON DELETE CASCADE,
			quantity INT NOT NULL DEFAULT 0,
			reserved_quantity INT NOT NULL DEFAULT 0,
			reorder_level INT NOT NULL DEFAULT 0,
			reorder_quantity INT NOT NULL DEFAULT 0,
			warehouse_location TEXT,
			last_restocked_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			order_number TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL,
			subtotal NUMERIC NOT NULL,
			shipping_cost NUMERIC NOT NULL,
			tax NUMERIC NOT NULL,
			total NUMERIC NOT NULL,
			shipping_address JSONB NOT NULL,
			billing_address JSONB NOT NULL,
			tracking_number TEXT,
			carrier TEXT,
			shipped_at TIMESTAMPTZ,
			delivered_at TIMESTAMPTZ,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id TEXT NOT NULL,
			quantity INT NOT NULL,
			unit_price NUMERIC NOT NULL,
			total_price NUMERIC NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS returns (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL REFERENCES orders(id),
			user_id TEXT NOT NULL,
			status TEXT NOT NULL,
			reason TEXT NOT NULL,
			refund_amount NUMERIC,
			admin_notes TEXT,
			requested_at TIMESTAMPTZ NOT NULL,
			processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS return_items (
			id TEXT PRIMARY KEY,
			return_id TEXT NOT NULL REFERENCES returns(id) ON DELETE CASCADE,
			order_item_id TEXT NOT NULL,
			quantity INT NOT NULL,
			reason TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS saved_products (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_name TEXT,
			ingredients TEXT NOT NULL,
			analysis_result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS affiliate_programs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT,
			commission_rate TEXT,
			cookie_duration TEXT,
			tier TEXT,
			website TEXT,
			signup_url TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			skin_type TEXT NOT NULL,
			skin_concerns TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS agent_tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			prompt TEXT NOT NULL,
			status TEXT NOT NULL,
			result TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
