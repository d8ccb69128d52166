package models

import "time"

type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "creditcard"
	PaymentTypeDebit      PaymentType = "debit"
)

// Payment is a stored payment method, either a credit card or a bank account.
type Payment struct {
	ID          string      `json:"id"`
	Type        PaymentType `json:"type"`
	Client      *Client     `json:"client"`
	CardType    *string     `json:"card_type"`
	Country     *string     `json:"country"`
	ExpireMonth *int        `json:"expire_month"`
	ExpireYear  *int        `json:"expire_year"`
	CardHolder  *string     `json:"card_holder"`
	Last4       *string     `json:"last4"`
	IBAN        *string     `json:"iban"`
	BIC         *string     `json:"bic"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	AppID       *string     `json:"app_id"`
}

func (p *Payment) GetID() string {
	if p == nil {
		return ""
	}
	return p.ID
}

func (p *Payment) FieldDefinitions() map[string]FieldDefinition {
	return map[string]FieldDefinition{
		"client": func(raw any) (err error) {
			p.Client, err = DeserializeObject[Client](raw)
			return err
		},
		"created_at": func(raw any) (err error) {
			p.CreatedAt, err = DeserializeDate(raw)
			return err
		},
		"updated_at": func(raw any) (err error) {
			p.UpdatedAt, err = DeserializeDate(raw)
			return err
		},
	}
}

func (p *Payment) UpdateableFields() []string {
	return []string{}
}
