package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paymill-mirror/src/db"
	"paymill-mirror/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// upsertTransactionQuery never replaces a row with an older version of the transaction.
const upsertTransactionQuery = `
	INSERT INTO paymill_transactions (
		id, amount, origin_amount, currency, status, description, livemode,
		client_id, payment_id, preauthorization_id, response_code, short_id, app_id,
		invoices, created_at, updated_at, raw
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	ON CONFLICT (id) DO UPDATE SET
		amount = EXCLUDED.amount,
		origin_amount = EXCLUDED.origin_amount,
		currency = EXCLUDED.currency,
		status = EXCLUDED.status,
		description = EXCLUDED.description,
		livemode = EXCLUDED.livemode,
		client_id = EXCLUDED.client_id,
		payment_id = EXCLUDED.payment_id,
		preauthorization_id = EXCLUDED.preauthorization_id,
		response_code = EXCLUDED.response_code,
		short_id = EXCLUDED.short_id,
		app_id = EXCLUDED.app_id,
		invoices = EXCLUDED.invoices,
		created_at = EXCLUDED.created_at,
		updated_at = EXCLUDED.updated_at,
		raw = EXCLUDED.raw,
		synced_at = NOW()
	WHERE paymill_transactions.updated_at IS NULL
		OR EXCLUDED.updated_at >= paymill_transactions.updated_at
`

// SaveTransaction upserts txn and reports whether a row was written. A delivery older
// than the stored row is skipped.
func SaveTransaction(ctx context.Context, pool *pgxpool.Pool, txn *models.Transaction, raw []byte) (bool, error) {
	invoices := txn.Invoices
	if invoices == nil {
		invoices = []string{}
	}

	tag, err := pool.Exec(ctx, upsertTransactionQuery,
		txn.ID,
		txn.Amount,
		txn.OriginAmount,
		txn.Currency,
		string(txn.Status),
		txn.Description,
		txn.Livemode,
		nullableString(txn.Client.GetID()),
		nullableString(txn.Payment.GetID()),
		nullableString(txn.Preauthorization.GetID()),
		txn.ResponseCode,
		txn.ShortID,
		txn.AppID,
		invoices,
		nullableTime(txn.CreatedAt),
		nullableTime(txn.UpdatedAt),
		raw,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	db.DelTransactionCache(db.TransactionCacheKey(txn.ID))
	return true, nil
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Transaction, error) {
	query := `SELECT raw FROM paymill_transactions WHERE id = $1`

	var raw []byte
	err := pool.QueryRow(ctx, query, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NewPMError(models.NotFound, fmt.Sprintf("transaction %s not found", id))
	}
	if err != nil {
		return nil, err
	}

	return models.DecodeTransaction(raw)
}

func ListTransactions(ctx context.Context, pool *pgxpool.Pool, filter *models.TransactionFilter, order *models.Order) ([]models.Transaction, error) {
	query, args, err := buildTransactionQuery(filter, order)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		txn, err := models.DecodeTransaction(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stored transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}

	return transactions, rows.Err()
}

// UpdateTransaction applies an update request to the mirrored transaction. Only fields
// the API allows to be updated are accepted.
func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, id string, fields map[string]any) (*models.Transaction, error) {
	params, err := models.RestrictToUpdateable(&models.Transaction{}, fields)
	if err != nil {
		return nil, err
	}

	value, ok := params["description"]
	if !ok {
		return GetTransactionByID(ctx, pool, id)
	}
	description, ok := value.(string)
	if !ok {
		return nil, models.NewPMError(models.WrongParams, "description must be a string.")
	}

	query := `
		UPDATE paymill_transactions
		SET description = $1, raw = jsonb_set(raw, '{description}', to_jsonb($1::text))
		WHERE id = $2
		RETURNING raw
	`
	var raw []byte
	err = pool.QueryRow(ctx, query, description, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.NewPMError(models.NotFound, fmt.Sprintf("transaction %s not found", id))
	}
	if err != nil {
		return nil, err
	}

	db.DelTransactionCache(db.TransactionCacheKey(id))
	return models.DecodeTransaction(raw)
}

var equalityPredicates = map[string]string{
	"client":      "client_id",
	"payment":     "payment_id",
	"description": "description",
	"status":      "status",
}

var rangePredicates = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func buildTransactionQuery(filter *models.TransactionFilter, order *models.Order) (string, []any, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter != nil {
		if err := filter.Err(); err != nil {
			return "", nil, err
		}
		for _, name := range filter.Names() {
			value, _ := filter.Get(name)
			switch {
			case equalityPredicates[name] != "":
				where = append(where, fmt.Sprintf("%s = %s", equalityPredicates[name], arg(value)))
			case rangePredicates[name] != "":
				from, to, err := models.ParseRange(value)
				if err != nil {
					return "", nil, err
				}
				column := rangePredicates[name]
				where = append(where, fmt.Sprintf("%s BETWEEN %s AND %s", column, arg(time.Unix(from, 0).UTC()), arg(time.Unix(to, 0).UTC())))
			case name == "amount":
				eq, amount, err := models.ParseAmount(value)
				if err != nil {
					return "", nil, err
				}
				where = append(where, fmt.Sprintf("origin_amount %s %s", eq, arg(amount)))
			default:
				return "", nil, models.NewPMError(models.WrongParams, fmt.Sprintf("unsupported filter %q", name))
			}
		}
	}

	orderBy, err := orderClause(order)
	if err != nil {
		return "", nil, err
	}

	query := "SELECT raw FROM paymill_transactions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + orderBy
	return query, args, nil
}

func orderClause(order *models.Order) (string, error) {
	if order == nil || order.Type == "" {
		return "created_at DESC, id", nil
	}
	if order.Type != "created_at" {
		return "", models.NewPMError(models.WrongParams, fmt.Sprintf("unsupported order %q", order.Type))
	}
	if order.Direction == models.SortAscending {
		return "created_at ASC, id", nil
	}
	return "created_at DESC, id", nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
