package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) ListPaymentsByOrder(ctx context.Context, orderID uint64) ([]*domain.Payment, error) {
	return r.listPayments(ctx, r.db, orderID)
}

func (r *Repository) listPayments(ctx context.Context, q querier, orderID uint64) ([]*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "amount", "currency", "method", "reference", "paid_at",
			"change_amount", "change_currency").
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("paid_at", "id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Payment, 0)
	for rows.Next() {
		var (
			p              domain.Payment
			changeAmount   decimal.NullDecimal
			changeCurrency *string
		)
		err := rows.Scan(
			&p.ID,
			&p.OrderID,
			&p.Amount,
			&p.Currency,
			&p.Method,
			&p.Reference,
			&p.PaidAt,
			&changeAmount,
			&changeCurrency,
		)
		if err != nil {
			return nil, err
		}
		if changeAmount.Valid && changeCurrency != nil {
			p.Change = &domain.ChangeGiven{
				Amount:   changeAmount.Decimal,
				Currency: domain.Currency(*changeCurrency),
			}
		}
		list = append(list, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func changeColumns(p *domain.Payment) (decimal.NullDecimal, *string) {
	if p.Change == nil {
		return decimal.NullDecimal{}, nil
	}
	c := string(p.Change.Currency)
	return decimal.NullDecimal{Decimal: p.Change.Amount, Valid: true}, &c
}

// UpdateOrderLedger holds a row lock on the order for the whole read, recompute
// and write cycle, so concurrent payment changes on one order are serialised.
func (r *Repository) UpdateOrderLedger(ctx context.Context, orderID uint64,
	updateFn port.UpdateLedgerFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		o, err := r.readOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}
		payments, err := r.listPayments(ctx, tx, orderID)
		if err != nil {
			return err
		}
		settings, err := r.readSettings(ctx, tx)
		if err != nil {
			return err
		}

		ledger := domain.NewLedger(o.ID, payments)
		if err := updateFn(o, ledger, settings); err != nil {
			return err
		}

		if err := r.persistLedger(ctx, tx, ledger); err != nil {
			return err
		}

		o.UpdatedAt = time.Now()
		statement := r.db.QueryBuilder.
			Update("orders").
			Set("abonado", o.Abonado).
			Set("faltante", o.Faltante).
			Set("estado_pago", o.EstadoPago).
			Set("updated_at", o.UpdatedAt).
			Where(sq.Eq{"id": o.ID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return order, nil
}

func (r *Repository) persistLedger(ctx context.Context, tx pgx.Tx, ledger *domain.Ledger) error {
	for _, id := range ledger.Removed() {
		statement := r.db.QueryBuilder.
			Delete("payments").
			Where(sq.Eq{"id": id, "order_id": ledger.OrderID()})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	for _, p := range ledger.Replaced() {
		changeAmount, changeCurrency := changeColumns(p)
		statement := r.db.QueryBuilder.
			Update("payments").
			Set("amount", p.Amount).
			Set("currency", p.Currency).
			Set("method", p.Method).
			Set("reference", p.Reference).
			Set("paid_at", p.PaidAt).
			Set("change_amount", changeAmount).
			Set("change_currency", changeCurrency).
			Where(sq.Eq{"id": p.ID, "order_id": ledger.OrderID()})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrPaymentNotInOrder
		}
	}

	for _, p := range ledger.Added() {
		changeAmount, changeCurrency := changeColumns(p)
		statement := r.db.QueryBuilder.
			Insert("payments").
			Columns("order_id", "amount", "currency", "method", "reference", "paid_at",
				"change_amount", "change_currency").
			Values(ledger.OrderID(), p.Amount, p.Currency, p.Method, p.Reference, p.PaidAt,
				changeAmount, changeCurrency).
			Suffix("RETURNING id")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&p.ID); err != nil {
			return err
		}
	}

	return nil
}
