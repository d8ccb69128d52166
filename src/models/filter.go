package models

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Equality prefixes a value in a comparison predicate.
type Equality string

const (
	EqualityEqual       Equality = "="
	EqualityGreaterThan Equality = ">"
	EqualityLessThan    Equality = "<"
)

// Filter accumulates named list predicates. Setting a predicate twice keeps the last value.
// The first invalid argument is remembered and reported by Err and Values.
type Filter struct {
	predicates map[string]string
	err        error
}

func (f *Filter) set(name, value string) {
	if f.predicates == nil {
		f.predicates = make(map[string]string)
	}
	f.predicates[name] = value
}

func (f *Filter) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Get returns the predicate stored under name.
func (f *Filter) Get(name string) (string, bool) {
	value, ok := f.predicates[name]
	return value, ok
}

// Names returns the names of all set predicates in sorted order.
func (f *Filter) Names() []string {
	names := make([]string, 0, len(f.predicates))
	for name := range f.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *Filter) Err() error {
	return f.err
}

func (f *Filter) Values() (url.Values, error) {
	if f.err != nil {
		return nil, f.err
	}
	values := url.Values{}
	for name, value := range f.predicates {
		values.Set(name, value)
	}
	return values, nil
}

// TransactionFilter narrows a transaction list request.
type TransactionFilter struct {
	Filter
}

func NewTransactionFilter() *TransactionFilter {
	return &TransactionFilter{}
}

// Client filters by client, given as an id or a *Client.
func (f *TransactionFilter) Client(client any) *TransactionFilter {
	id, err := IDFromObject(client)
	if err != nil {
		f.fail(err)
		return f
	}
	f.set("client", id)
	return f
}

// Payment filters by payment, given as an id or a *Payment.
func (f *TransactionFilter) Payment(payment any) *TransactionFilter {
	id, err := IDFromObject(payment)
	if err != nil {
		f.fail(err)
		return f
	}
	f.set("payment", id)
	return f
}

// Amount filters by amount in the smallest currency unit, e.g. "=300" or ">300".
// EqualityEqual is used when no equality is given.
func (f *TransactionFilter) Amount(amount int64, equality ...Equality) *TransactionFilter {
	eq := EqualityEqual
	if len(equality) > 0 {
		eq = equality[0]
	}
	f.set("amount", fmt.Sprintf("%s%d", eq, amount))
	return f
}

func (f *TransactionFilter) Description(description string) *TransactionFilter {
	f.set("description", description)
	return f
}

// CreatedAt filters by creation time. Bounds are times or Unix seconds.
func (f *TransactionFilter) CreatedAt(from, to any) *TransactionFilter {
	return f.timeRange("created_at", from, to)
}

// UpdatedAt filters by last update time. Bounds are times or Unix seconds.
func (f *TransactionFilter) UpdatedAt(from, to any) *TransactionFilter {
	return f.timeRange("updated_at", from, to)
}

func (f *TransactionFilter) timeRange(name string, from, to any) *TransactionFilter {
	realFrom, err := TimeFromObject(from)
	if err != nil {
		f.fail(err)
		return f
	}
	realTo, err := TimeFromObject(to)
	if err != nil {
		f.fail(err)
		return f
	}
	f.set(name, fmt.Sprintf("%d-%d", realFrom, realTo))
	return f
}

// Status filters by status, given as a string or a TransactionStatus.
func (f *TransactionFilter) Status(status any) *TransactionFilter {
	var value string
	switch s := status.(type) {
	case string:
		value = s
	case TransactionStatus:
		value = string(s)
	default:
		f.fail(NewPMError(WrongParams, "status must be a string."))
		return f
	}
	f.set("status", value)
	return f
}

// ParseAmount splits an amount predicate such as ">300" into its equality and value. A
// predicate without an equality prefix compares for equality.
func ParseAmount(predicate string) (Equality, int64, error) {
	eq := EqualityEqual
	rest := predicate
	if rest != "" {
		switch prefix := Equality(rest[:1]); prefix {
		case EqualityEqual, EqualityGreaterThan, EqualityLessThan:
			eq, rest = prefix, rest[1:]
		}
	}
	amount, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return "", 0, NewPMError(WrongParams, fmt.Sprintf("invalid amount filter %q", predicate))
	}
	return eq, amount, nil
}

// ParseRange splits a "<from>-<to>" predicate of Unix seconds.
func ParseRange(predicate string) (int64, int64, error) {
	invalid := NewPMError(WrongParams, fmt.Sprintf("invalid range filter %q", predicate))
	from, to, ok := strings.Cut(predicate, "-")
	if !ok {
		return 0, 0, invalid
	}
	realFrom, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return 0, 0, invalid
	}
	realTo, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return 0, 0, invalid
	}
	return realFrom, realTo, nil
}
