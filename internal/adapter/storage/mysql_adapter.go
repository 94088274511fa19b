package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/nozama/internal/core/domain"
)

var ErrDuplicateOrder = errors.New("order already recorded")

const mysqlDuplicateEntry = 1062

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id          VARCHAR(64) PRIMARY KEY,
		shopper_id  VARCHAR(64) NOT NULL,
		status      VARCHAR(16) NOT NULL,
		total_units INT NOT NULL,
		created_at  DATETIME(6) NOT NULL,
		updated_at  DATETIME(6) NOT NULL,
		INDEX idx_orders_shopper (shopper_id)
	)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		order_id VARCHAR(64) NOT NULL,
		line_no  INT NOT NULL,
		item_id  INT NOT NULL,
		quantity INT NOT NULL,
		PRIMARY KEY (order_id, line_no),
		CONSTRAINT fk_order_lines_order FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE
	)`,
}

// MySQLAdapter is the order ledger. Inventory itself is never persisted.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

func (m *MySQLAdapter) SaveOrder(ctx context.Context, record domain.OrderRecord) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, shopper_id, status, total_units, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.ShopperID, record.Status, record.TotalUnits(),
		record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("insert order: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO order_lines (order_id, line_no, item_id, quantity)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare order lines: %w", err)
	}
	defer stmt.Close()

	for i, line := range record.Lines {
		if _, err := stmt.ExecContext(ctx, record.ID, i, line.ItemID, line.Quantity); err != nil {
			return fmt.Errorf("insert order line %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetOrder(ctx context.Context, orderID string) (*domain.OrderRecord, error) {
	var rec domain.OrderRecord
	err := m.db.QueryRowContext(ctx, `
		SELECT id, shopper_id, status, created_at, updated_at
		FROM orders WHERE id = ?`, orderID,
	).Scan(&rec.ID, &rec.ShopperID, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT item_id, quantity FROM order_lines
		WHERE order_id = ? ORDER BY line_no`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.Line
		if err := rows.Scan(&line.ItemID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		rec.Lines = append(rec.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	return &rec, nil
}
