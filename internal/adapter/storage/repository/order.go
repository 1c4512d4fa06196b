package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "client", "currency", "total", "abonado", "faltante", "estado_pago", "created_at", "updated_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.Client,
		&order.Currency,
		&order.Total,
		&order.Abonado,
		&order.Faltante,
		&order.EstadoPago,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns(orderColumns[1:]...).
			Values(order.Client, order.Currency, order.Total, order.Abonado, order.Faltante,
				order.EstadoPago, order.CreatedAt, order.UpdatedAt).
			Suffix("RETURNING id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		if len(order.Items) == 0 {
			return nil
		}
		itemsSt := r.db.QueryBuilder.
			Insert("order_items").
			Columns("order_id", "description", "quantity", "unit_price")
		for _, item := range order.Items {
			itemsSt = itemsSt.Values(order.ID, item.Description, item.Quantity, item.UnitPrice)
		}
		sql, args, err = itemsSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := r.readOrder(ctx, r.db, orderID, false)
	if err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.
		Select("description", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item := domain.OrderItem{}
		if err := rows.Scan(&item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) readOrder(ctx context.Context, q querier, orderID uint64, lock bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if lock {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *Repository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("id")
	if filter.EstadoPago != "" {
		statement = statement.Where(sq.Eq{"estado_pago": filter.EstadoPago})
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListOrderIDs(ctx context.Context, filter domain.OrderFilter) ([]uint64, error) {
	statement := r.db.QueryBuilder.
		Select("id").
		From("orders").
		OrderBy("id")
	if filter.EstadoPago != "" {
		statement = statement.Where(sq.Eq{"estado_pago": filter.EstadoPago})
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uint64])
	if err != nil {
		return nil, err
	}
	return ids, nil
}
