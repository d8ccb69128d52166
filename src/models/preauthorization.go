package models

import "time"

// Preauthorization reserves an amount on a payment that a later transaction captures.
type Preauthorization struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Livemode    bool      `json:"livemode"`
	Payment     *Payment  `json:"payment"`
	Client      *Client   `json:"client"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AppID       *string   `json:"app_id"`
}

func (p *Preauthorization) GetID() string {
	if p == nil {
		return ""
	}
	return p.ID
}

func (p *Preauthorization) FieldDefinitions() map[string]FieldDefinition {
	return map[string]FieldDefinition{
		"payment": func(raw any) (err error) {
			p.Payment, err = DeserializeObject[Payment](raw)
			return err
		},
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

func (p *Preauthorization) UpdateableFields() []string {
	return []string{"description"}
}
