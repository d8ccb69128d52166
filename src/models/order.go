package models

import "net/url"

type SortDirection string

const (
	SortDefault    SortDirection = ""
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Order is the sort directive of a list request.
type Order struct {
	Type      string
	Direction SortDirection
}

func (o *Order) Asc() *Order {
	o.Direction = SortAscending
	return o
}

func (o *Order) Desc() *Order {
	o.Direction = SortDescending
	return o
}

func (o *Order) Values() url.Values {
	values := url.Values{}
	if o == nil || o.Type == "" {
		return values
	}
	if o.Direction == SortDefault {
		values.Set("order", o.Type)
	} else {
		values.Set("order", o.Type+"_"+string(o.Direction))
	}
	return values
}

// TransactionOrderCreatedAt orders transactions by creation time.
func TransactionOrderCreatedAt() *Order {
	return &Order{Type: "created_at"}
}

// ListParams merges a filter and an order into list request parameters. Either may be nil.
func ListParams(filter *TransactionFilter, order *Order) (url.Values, error) {
	params := url.Values{}
	if filter != nil {
		values, err := filter.Values()
		if err != nil {
			return nil, err
		}
		for key, value := range values {
			params[key] = value
		}
	}
	for key, value := range order.Values() {
		params[key] = value
	}
	return params, nil
}
