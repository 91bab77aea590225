package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/avetikov/orderwatch/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const orderFields = "id, code, customer_name, phone, status, total, priority, notes, is_new, admin_seen, created_at"

type IRepository interface {
	GetOrders(context.Context) ([]model.Order, error)
	GetOrderByKey(context.Context, string) (model.Order, error)
	CreateOrder(context.Context, model.Order) (model.Order, error)
	UpdateOrderStatus(context.Context, string, string, string) (model.Order, error)
	MarkOrderSeen(context.Context, string) error
	MarkAllSeen(context.Context) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = conn.PingContext(ctx); err != nil {
		return nil, err
	}

	if err = migrate(conn); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func migrate(conn *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(conn, "migrations")
}

// GetOrders returns the full current order collection, newest first. The
// snapshot strategy is deliberate: no "since" cursor, the detector diffs by
// identifier sets instead.
func (r Repository) GetOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+orderFields+" FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		err = rows.Scan(&o.ID, &o.Code, &o.CustomerName, &o.Phone, &o.Status, &o.Total, &o.Priority, &o.Notes, &o.IsNew, &o.AdminSeen, &o.CreatedAt)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// GetOrderByKey matches either the numeric id or the human-facing code.
func (r Repository) GetOrderByKey(ctx context.Context, key string) (model.Order, error) {
	var o model.Order
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE code = $1 OR id::text = $1", key)
	err := row.Scan(&o.ID, &o.Code, &o.CustomerName, &o.Phone, &o.Status, &o.Total, &o.Priority, &o.Notes, &o.IsNew, &o.AdminSeen, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}

	return o, nil
}

func (r Repository) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	row := r.Conn.QueryRowContext(ctx,
		"INSERT INTO orders (code, customer_name, phone, status, total, priority, is_new, admin_seen, created_at) VALUES ($1, $2, $3, $4, $5, $6, TRUE, FALSE, $7) RETURNING id, created_at",
		o.Code, o.CustomerName, o.Phone, o.Status, o.Total, o.Priority, time.Now().UTC())
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return model.Order{}, err
	}

	o.IsNew = true
	o.AdminSeen = false
	return o, nil
}

// UpdateOrderStatus sets the new status and, as a side effect observed by
// the next snapshot, clears is_new and sets admin_seen.
func (r Repository) UpdateOrderStatus(ctx context.Context, key, status, notes string) (model.Order, error) {
	var o model.Order
	row := r.Conn.QueryRowContext(ctx,
		"UPDATE orders SET status = $1, notes = COALESCE(NULLIF($2, ''), notes), is_new = FALSE, admin_seen = TRUE WHERE code = $3 OR id::text = $3 RETURNING "+orderFields,
		status, notes, key)
	err := row.Scan(&o.ID, &o.Code, &o.CustomerName, &o.Phone, &o.Status, &o.Total, &o.Priority, &o.Notes, &o.IsNew, &o.AdminSeen, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}

	return o, nil
}

func (r Repository) MarkOrderSeen(ctx context.Context, key string) error {
	res, err := r.Conn.ExecContext(ctx, "UPDATE orders SET is_new = FALSE, admin_seen = TRUE WHERE code = $1 OR id::text = $1", key)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r Repository) MarkAllSeen(ctx context.Context) error {
	_, err := r.Conn.ExecContext(ctx, "UPDATE orders SET is_new = FALSE, admin_seen = TRUE WHERE is_new = TRUE OR admin_seen = FALSE")
	return err
}
