package handlers

import (
	"log"
	"net/http"
	"net/url"

	"paymill-mirror/src/db"
	sql "paymill-mirror/src/db/sql"
	"paymill-mirror/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
)

// filterFromQuery turns list query parameters into a filter and an order, using the same
// predicate syntax the PAYMILL list endpoint accepts.
func filterFromQuery(query url.Values) (*models.TransactionFilter, *models.Order, error) {
	filter := models.NewTransactionFilter()

	if v := query.Get("client"); v != "" {
		filter.Client(v)
	}
	if v := query.Get("payment"); v != "" {
		filter.Payment(v)
	}
	if v := query.Get("description"); v != "" {
		filter.Description(v)
	}
	if v := query.Get("status"); v != "" {
		filter.Status(v)
	}
	if v := query.Get("amount"); v != "" {
		eq, amount, err := models.ParseAmount(v)
		if err != nil {
			return nil, nil, err
		}
		filter.Amount(amount, eq)
	}
	if v := query.Get("created_at"); v != "" {
		from, to, err := models.ParseRange(v)
		if err != nil {
			return nil, nil, err
		}
		filter.CreatedAt(from, to)
	}
	if v := query.Get("updated_at"); v != "" {
		from, to, err := models.ParseRange(v)
		if err != nil {
			return nil, nil, err
		}
		filter.UpdatedAt(from, to)
	}
	if err := filter.Err(); err != nil {
		return nil, nil, err
	}

	var order *models.Order
	switch v := query.Get("order"); v {
	case "":
	case "created_at":
		order = models.TransactionOrderCreatedAt()
	case "created_at_asc":
		order = models.TransactionOrderCreatedAt().Asc()
	case "created_at_desc":
		order = models.TransactionOrderCreatedAt().Desc()
	default:
		return nil, nil, models.NewPMError(models.WrongParams, "unsupported order "+v)
	}

	return filter, order, nil
}

func ListTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, order, err := filterFromQuery(r.URL.Query())
		if err != nil {
			log.Printf("ERROR: Invalid transaction list query %q: %v", r.URL.RawQuery, err)
			writeError(w, err, "invalid query")
			return
		}

		transactions, err := sql.ListTransactions(r.Context(), pool, filter, order)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions: %v", err)
			writeError(w, err, "failed to list transactions")
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

func GetTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID := chi.URLParam(r, "transaction_id")
		cacheKey := db.TransactionCacheKey(transactionID)

		if txn, ok := db.GetTransactionCache(cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(txn)
			return
		}

		txn, err := sql.GetTransactionByID(r.Context(), pool, transactionID)
		if err != nil {
			log.Printf("ERROR: Failed to get transaction %s: %v", transactionID, err)
			writeError(w, err, "failed to get transaction")
			return
		}
		db.SetTransactionCache(cacheKey, txn)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(txn)
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID := chi.URLParam(r, "transaction_id")

		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			log.Printf("ERROR: Failed to decode update request for transaction %s: %v", transactionID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		updated, err := sql.UpdateTransaction(r.Context(), pool, transactionID, fields)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction %s: %v", transactionID, err)
			writeError(w, err, "failed to update transaction")
			return
		}

		log.Printf("INFO: Updated transaction %s", transactionID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}
