package api

import (
	"encoding/json"

	"github.com/rpupo63/ideaboard-backend/errs"
)

// Optional is a PATCH field that tells apart a missing key, an explicit null and a value
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON only runs when the key is present in the body
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Some returns a set Optional holding value
func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: value}
}

// column adds the field to changes when it was supplied. rule is a validator tag
// applied to the value; nullable decides whether an explicit null clears the column.
func column[T any](changes map[string]any, name, field string, o Optional[T], rule string, nullable bool) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		if !nullable {
			return errs.NewInvalidFieldError(field, "cannot be null")
		}
		changes[name] = nil
		return nil
	}
	if rule != "" {
		if err := validate.Var(o.Value, rule); err != nil {
			return validationError(field, err)
		}
	}
	changes[name] = o.Value
	return nil
}
