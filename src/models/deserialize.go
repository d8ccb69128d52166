package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// DeserializeDate converts a Unix timestamp in seconds into a time. A nil value yields the zero time.
func DeserializeDate(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	case int:
		return time.Unix(int64(v), 0).UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", v, err)
		}
		return time.Unix(n, 0).UTC(), nil
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", v, err)
		}
		return time.Unix(n, 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("cannot deserialize %T as a date", raw)
	}
}

// DeserializeObject loads a nested record. A bare string is treated as a reference and
// only sets the id.
func DeserializeObject[T any, PT interface {
	*T
	PaymillObject
}](raw any) (*T, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		obj := new(T)
		if err := Load(PT(obj), map[string]any{"id": v}); err != nil {
			return nil, err
		}
		return obj, nil
	case map[string]any:
		obj := new(T)
		if err := Load(PT(obj), v); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("cannot deserialize %T as an object", raw)
	}
}

// DeserializeObjectList loads a list of nested records, keeping their order. Every raw
// item yields one record, so null items are rejected.
func DeserializeObjectList[T any, PT interface {
	*T
	PaymillObject
}](raw any) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot deserialize %T as a list", raw)
	}

	list := make([]T, 0, len(items))
	for i, item := range items {
		obj, err := DeserializeObject[T, PT](item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if obj == nil {
			return nil, fmt.Errorf("item %d: empty object", i)
		}
		list = append(list, *obj)
	}
	return list, nil
}

// IDFromObject resolves a filter reference given either as an id or as an object.
func IDFromObject(ref any) (string, error) {
	switch v := ref.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case Identifier:
		return v.GetID(), nil
	default:
		return "", NewPMError(WrongParams, fmt.Sprintf("expected an id or an object with an id, got %T", ref))
	}
}

// TimeFromObject resolves a time bound given either as a time or as Unix seconds.
func TimeFromObject(v any) (int64, error) {
	switch t := v.(type) {
	case time.Time:
		return t.Unix(), nil
	case *time.Time:
		if t == nil {
			return 0, NewPMError(WrongParams, "time must not be nil")
		}
		return t.Unix(), nil
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	default:
		return 0, NewPMError(WrongParams, fmt.Sprintf("expected a time or Unix seconds, got %T", v))
	}
}
