package models

import "time"

type Refund struct {
	ID           string       `json:"id"`
	Transaction  *Transaction `json:"transaction"`
	Amount       string       `json:"amount"`
	Status       string       `json:"status"`
	Description  *string      `json:"description"`
	Livemode     bool         `json:"livemode"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	ResponseCode int          `json:"response_code"`
	AppID        *string      `json:"app_id"`
}

func (r *Refund) GetID() string {
	if r == nil {
		return ""
	}
	return r.ID
}

func (r *Refund) FieldDefinitions() map[string]FieldDefinition {
	return map[string]FieldDefinition{
		// Nested refunds usually carry the parent transaction id only.
		"transaction": func(raw any) (err error) {
			r.Transaction, err = DeserializeObject[Transaction](raw)
			return err
		},
		"created_at": func(raw any) (err error) {
			r.CreatedAt, err = DeserializeDate(raw)
			return err
		},
		"updated_at": func(raw any) (err error) {
			r.UpdatedAt, err = DeserializeDate(raw)
			return err
		},
	}
}

func (r *Refund) UpdateableFields() []string {
	return []string{}
}
