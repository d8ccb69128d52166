package handlers

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"
	"log"
	"net/http"

	db "paymill-mirror/src/db/sql"
	"paymill-mirror/src/metrics"
	"paymill-mirror/src/models"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxWebhookBody = 1 << 20

// Events whose resource is a transaction.
var transactionEvents = map[string]bool{
	"transaction.created":   true,
	"transaction.succeeded": true,
	"transaction.failed":    true,
	"transaction.updated":   true,
	"chargeback.executed":   true,
}

// eventLabel maps an event type onto a bounded set of metric label values.
func eventLabel(eventType string) string {
	if transactionEvents[eventType] {
		return eventType
	}
	return "other"
}

type webhookEvent struct {
	Event struct {
		EventType     string         `json:"event_type"`
		EventResource map[string]any `json:"event_resource"`
		CreatedAt     int64          `json:"created_at"`
		AppID         *string        `json:"app_id"`
	} `json:"event"`
}

// parseWebhookEvent returns the event type and, for transaction events, the decoded
// transaction with its raw JSON. Other events yield a nil transaction.
func parseWebhookEvent(body []byte) (string, *models.Transaction, []byte, error) {
	var event webhookEvent
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		return "", nil, nil, models.NewPMError(models.WrongParams, fmt.Sprintf("invalid webhook body: %v", err))
	}
	eventType := event.Event.EventType
	if eventType == "" {
		return "", nil, nil, models.NewPMError(models.WrongParams, "missing event type")
	}
	if !transactionEvents[eventType] {
		return eventType, nil, nil, nil
	}
	if event.Event.EventResource == nil {
		return eventType, nil, nil, models.NewPMError(models.WrongParams, "missing event resource")
	}

	var txn models.Transaction
	if err := models.Load(&txn, event.Event.EventResource); err != nil {
		return eventType, nil, nil, models.NewPMError(models.WrongParams, fmt.Sprintf("invalid transaction: %v", err))
	}
	if txn.ID == "" {
		return eventType, nil, nil, models.NewPMError(models.WrongParams, "transaction without id")
	}
	raw, err := json.Marshal(event.Event.EventResource)
	if err != nil {
		return eventType, nil, nil, err
	}
	return eventType, &txn, raw, nil
}

func PaymillWebhook(pool *pgxpool.Pool, webhookToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if webhookToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(webhookToken)) != 1 {
			log.Printf("ERROR: Webhook with invalid token from %s", r.RemoteAddr)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			log.Printf("ERROR: Failed to read webhook body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		eventType, txn, raw, err := parseWebhookEvent(body)
		if err != nil {
			log.Printf("ERROR: Failed to parse webhook event %q: %v", eventType, err)
			metrics.WebhookEventsTotal.WithLabelValues(eventLabel(eventType), "invalid").Inc()
			writeError(w, err, "failed to parse webhook")
			return
		}
		if txn == nil {
			log.Printf("INFO: Ignoring webhook event %s", eventType)
			metrics.WebhookEventsTotal.WithLabelValues(eventLabel(eventType), "ignored").Inc()
			w.WriteHeader(http.StatusOK)
			return
		}

		written, err := db.SaveTransaction(r.Context(), pool, txn, raw)
		if err != nil {
			log.Printf("ERROR: Failed to save transaction %s from event %s: %v", txn.ID, eventType, err)
			metrics.WebhookEventsTotal.WithLabelValues(eventType, "error").Inc()
			http.Error(w, "failed to save transaction", http.StatusInternalServerError)
			return
		}
		if !written {
			log.Printf("INFO: Skipping stale transaction %s from event %s", txn.ID, eventType)
			metrics.WebhookEventsTotal.WithLabelValues(eventType, "stale").Inc()
			w.WriteHeader(http.StatusOK)
			return
		}

		metrics.WebhookEventsTotal.WithLabelValues(eventType, "saved").Inc()
		metrics.TransactionsSavedTotal.WithLabelValues(string(txn.Status.Kind())).Inc()
		log.Printf("INFO: Saved transaction %s from event %s, status %s, amount %s %s",
			txn.ID, eventType, txn.Status, txn.MajorAmount().StringFixed(2), txn.Currency)

		w.WriteHeader(http.StatusOK)
	}
}
