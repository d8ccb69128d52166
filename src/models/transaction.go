package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the charge of a credit card or a direct debit. Instances come from API
// responses; only Description may be changed locally before an update.
type Transaction struct {
	ID               string            `json:"id"`
	Amount           string            `json:"amount"`
	OriginAmount     int64             `json:"origin_amount"`
	Currency         string            `json:"currency"`
	Status           TransactionStatus `json:"status"`
	Description      string            `json:"description"`
	Livemode         bool              `json:"livemode"`
	Refunds          []Refund          `json:"refunds"`
	Payment          *Payment          `json:"payment"`
	Client           *Client           `json:"client"`
	Preauthorization *Preauthorization `json:"preauthorization"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	ResponseCode     int               `json:"response_code"`
	ShortID          string            `json:"short_id"`
	Invoices         []string          `json:"invoices"`
	Fees             []Fee             `json:"fees"`
	AppID            *string           `json:"app_id"`
}

type TransactionStatus string

const (
	StatusOpen            TransactionStatus = "open"
	StatusPending         TransactionStatus = "pending"
	StatusClosed          TransactionStatus = "closed"
	StatusFailed          TransactionStatus = "failed"
	StatusPartialRefunded TransactionStatus = "partial_refunded"
	StatusRefunded        TransactionStatus = "refunded"
	StatusPreauthorize    TransactionStatus = "preauthorize"
	StatusPreauth         TransactionStatus = "preauth"

	// StatusUnrecognized is reported by Kind for values this client does not know yet.
	StatusUnrecognized TransactionStatus = "unrecognized"
)

var transactionStatuses = map[TransactionStatus]struct{}{
	StatusOpen:            {},
	StatusPending:         {},
	StatusClosed:          {},
	StatusFailed:          {},
	StatusPartialRefunded: {},
	StatusRefunded:        {},
	StatusPreauthorize:    {},
	StatusPreauth:         {},
}

func (s TransactionStatus) Known() bool {
	_, ok := transactionStatuses[s]
	return ok
}

// Kind returns s when it is a known status and StatusUnrecognized otherwise. The raw
// value is never rewritten on the record itself.
func (s TransactionStatus) Kind() TransactionStatus {
	if s.Known() {
		return s
	}
	return StatusUnrecognized
}

func (t *Transaction) GetID() string {
	if t == nil {
		return ""
	}
	return t.ID
}

func (t *Transaction) FieldDefinitions() map[string]FieldDefinition {
	return map[string]FieldDefinition{
		"created_at": func(raw any) (err error) {
			t.CreatedAt, err = DeserializeDate(raw)
			return err
		},
		"updated_at": func(raw any) (err error) {
			t.UpdatedAt, err = DeserializeDate(raw)
			return err
		},
		"fees": func(raw any) (err error) {
			t.Fees, err = DeserializeObjectList[Fee](raw)
			return err
		},
		"client": func(raw any) (err error) {
			t.Client, err = DeserializeObject[Client](raw)
			return err
		},
		"payment": func(raw any) (err error) {
			t.Payment, err = DeserializeObject[Payment](raw)
			return err
		},
		"preauthorization": func(raw any) (err error) {
			t.Preauthorization, err = DeserializeObject[Preauthorization](raw)
			return err
		},
		"refunds": func(raw any) (err error) {
			t.Refunds, err = DeserializeObjectList[Refund](raw)
			return err
		},
	}
}

func (t *Transaction) UpdateableFields() []string {
	return []string{"description"}
}

// MajorAmount returns OriginAmount in major currency units, e.g. 4200 EUR cents as 42.00.
func (t *Transaction) MajorAmount() decimal.Decimal {
	return decimal.New(t.OriginAmount, -currencyExponent(t.Currency))
}

func DecodeTransaction(body []byte) (*Transaction, error) {
	var t Transaction
	if err := Decode(&t, body); err != nil {
		return nil, err
	}
	return &t, nil
}

// ISO 4217 minor unit exponents that differ from 2.
var currencyExponents = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0, "KRW": 0,
	"PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

func currencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}
