package models

import "time"

// Fee is an application fee charged on a transaction by a connected app.
type Fee struct {
	Type        string    `json:"type"`
	Application string    `json:"application"`
	Payment     string    `json:"payment"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	BilledAt    time.Time `json:"billed_at"`
}

func (f *Fee) FieldDefinitions() map[string]FieldDefinition {
	return map[string]FieldDefinition{
		"billed_at": func(raw any) (err error) {
			f.BilledAt, err = DeserializeDate(raw)
			return err
		},
	}
}

func (f *Fee) UpdateableFields() []string {
	return []string{}
}
