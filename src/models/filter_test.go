package models

import (
	"testing"
	"time"
)

func TestTransactionFilter_Amount(t *testing.T) {
	tests := []struct {
		name   string
		filter *TransactionFilter
		want   string
	}{
		{"default equality", NewTransactionFilter().Amount(300), "=300"},
		{"greater than", NewTransactionFilter().Amount(300, ">"), ">300"},
		{"less than", NewTransactionFilter().Amount(300, EqualityLessThan), "<300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.filter.Get("amount")
			if !ok || got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTransactionFilter_TimeRanges(t *testing.T) {
	numeric := NewTransactionFilter().CreatedAt(1000, 2000)
	if got, _ := numeric.Get("created_at"); got != "1000-2000" {
		t.Errorf("expected 1000-2000, got %q", got)
	}

	dates := NewTransactionFilter().CreatedAt(time.Unix(1000, 0), time.Unix(2000, 0))
	if got, _ := dates.Get("created_at"); got != "1000-2000" {
		t.Errorf("expected 1000-2000 from dates, got %q", got)
	}

	updated := NewTransactionFilter().UpdatedAt(int64(5), time.Unix(10, 0))
	if got, _ := updated.Get("updated_at"); got != "5-10" {
		t.Errorf("expected 5-10, got %q", got)
	}

	bad := NewTransactionFilter().CreatedAt("monday", 2000)
	if !IsWrongParams(bad.Err()) {
		t.Errorf("expected wrong params error, got %v", bad.Err())
	}
	if _, ok := bad.Get("created_at"); ok {
		t.Errorf("invalid range should not be stored")
	}
}

func TestTransactionFilter_References(t *testing.T) {
	f := NewTransactionFilter().
		Client("client_1").
		Payment(&Payment{ID: "pay_1"})
	if got, _ := f.Get("client"); got != "client_1" {
		t.Errorf("unexpected client predicate %q", got)
	}
	if got, _ := f.Get("payment"); got != "pay_1" {
		t.Errorf("unexpected payment predicate %q", got)
	}
	if f.Err() != nil {
		t.Errorf("unexpected error %v", f.Err())
	}

	f.Client(3.5)
	if !IsWrongParams(f.Err()) {
		t.Errorf("expected wrong params error, got %v", f.Err())
	}
}

func TestTransactionFilter_Status(t *testing.T) {
	f := NewTransactionFilter().Status("open")
	if f.Err() != nil {
		t.Fatalf("unexpected error %v", f.Err())
	}
	if got, _ := f.Get("status"); got != "open" {
		t.Errorf("expected open, got %q", got)
	}

	f.Status(StatusRefunded)
	if got, _ := f.Get("status"); got != "refunded" {
		t.Errorf("expected refunded, got %q", got)
	}
}

func TestTransactionFilter_StatusRejectsNonString(t *testing.T) {
	f := NewTransactionFilter().Status(42)
	err := f.Err()
	if !IsWrongParams(err) {
		t.Fatalf("expected wrong params error, got %v", err)
	}
	if err.Error() != "status must be a string." {
		t.Errorf("unexpected message %q", err.Error())
	}
	if _, ok := f.Get("status"); ok {
		t.Errorf("rejected status should not be stored")
	}
	if _, err := f.Values(); !IsWrongParams(err) {
		t.Errorf("expected Values to report the error, got %v", err)
	}
}

func TestTransactionFilter_LastWriteWins(t *testing.T) {
	f := NewTransactionFilter().Description("first").Description("second")
	if got, _ := f.Get("description"); got != "second" {
		t.Errorf("expected second, got %q", got)
	}
}

func TestTransactionFilter_Values(t *testing.T) {
	f := NewTransactionFilter().
		Amount(300, EqualityGreaterThan).
		Status(StatusClosed).
		Description("Cart 1138")

	values, err := f.Values()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values.Get("amount") != ">300" || values.Get("status") != "closed" || values.Get("description") != "Cart 1138" {
		t.Errorf("unexpected values %v", values)
	}
	names := f.Names()
	if len(names) != 3 || names[0] != "amount" || names[2] != "status" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		predicate string
		eq        Equality
		amount    int64
		wantErr   bool
	}{
		{"=300", EqualityEqual, 300, false},
		{">300", EqualityGreaterThan, 300, false},
		{"<42", EqualityLessThan, 42, false},
		{"300", EqualityEqual, 300, false},
		{">", "", 0, true},
		{"abc", "", 0, true},
		{"", "", 0, true},
	}
	for _, tt := range tests {
		eq, amount, err := ParseAmount(tt.predicate)
		if tt.wantErr {
			if !IsWrongParams(err) {
				t.Errorf("%q: expected wrong params error, got %v", tt.predicate, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.predicate, err)
			continue
		}
		if eq != tt.eq || amount != tt.amount {
			t.Errorf("%q: expected %s%d, got %s%d", tt.predicate, tt.eq, tt.amount, eq, amount)
		}
	}
}

func TestParseAmount_RoundTrip(t *testing.T) {
	f := NewTransactionFilter().Amount(300, EqualityLessThan)
	predicate, _ := f.Get("amount")
	eq, amount, err := ParseAmount(predicate)
	if err != nil || eq != EqualityLessThan || amount != 300 {
		t.Errorf("unexpected round trip %s%d %v", eq, amount, err)
	}
}

func TestParseRange(t *testing.T) {
	from, to, err := ParseRange("1000-2000")
	if err != nil || from != 1000 || to != 2000 {
		t.Errorf("unexpected result %d %d %v", from, to, err)
	}
	for _, bad := range []string{"1000", "a-2000", "1000-b", ""} {
		if _, _, err := ParseRange(bad); !IsWrongParams(err) {
			t.Errorf("%q: expected wrong params error, got %v", bad, err)
		}
	}
}
