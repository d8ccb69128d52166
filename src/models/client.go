package models

import "time"

// Client holds the customer data stored with PAYMILL.
type Client struct {
	ID          string    `json:"id"`
	Email       *string   `json:"email"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AppID       *string   `json:"app_id"`
}

func (c *Client) GetID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

func (c *Client) FieldDefinitions() map[string]FieldDefinition {
	return map[string]FieldDefinition{
		"created_at": func(raw any) (err error) {
			c.CreatedAt, err = DeserializeDate(raw)
			return err
		},
		"updated_at": func(raw any) (err error) {
			c.UpdatedAt, err = DeserializeDate(raw)
			return err
		},
	}
}

func (c *Client) UpdateableFields() []string {
	return []string{"email", "description"}
}
