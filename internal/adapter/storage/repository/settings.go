package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) ReadSettings(ctx context.Context) (*domain.Settings, error) {
	return r.readSettings(ctx, r.db)
}

func (r *Repository) readSettings(ctx context.Context, q querier) (*domain.Settings, error) {
	statement := r.db.QueryBuilder.
		Select("principal_currency", "updated_at").
		From("settings").
		Where(sq.Eq{"id": 1})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	settings := domain.Settings{Rates: domain.ConversionRates{}}
	err = q.QueryRow(ctx, sql, args...).Scan(&settings.Principal, &settings.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	ratesSt := r.db.QueryBuilder.
		Select("currency", "rate").
		From("conversion_rates")

	sql, args, err = ratesSt.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c    domain.Currency
			rate decimal.NullDecimal
		)
		if err := rows.Scan(&c, &rate); err != nil {
			return nil, err
		}
		settings.Rates[c] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *Repository) UpdateSettings(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		settingsSt := r.db.QueryBuilder.
			Update("settings").
			Set("principal_currency", settings.Principal).
			Set("updated_at", settings.UpdatedAt).
			Where(sq.Eq{"id": 1})

		sql, args, err := settingsSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		sql, args, err = r.db.QueryBuilder.Delete("conversion_rates").ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		if len(settings.Rates) == 0 {
			return nil
		}
		ratesSt := r.db.QueryBuilder.
			Insert("conversion_rates").
			Columns("currency", "rate")
		for c, rate := range settings.Rates {
			ratesSt = ratesSt.Values(c, rate)
		}
		sql, args, err = ratesSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	return r.ReadSettings(ctx)
}
