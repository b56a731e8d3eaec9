package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Quantity is a numeric line-item field (document count, minutes).
// Line items come from hand-edited forms and old imports, so decoding never
// fails: anything that is not a number (or a numeric string) becomes 0.
type Quantity float64

// Q is a shorthand for building optional quantities in code and tests.
func Q(v float64) *Quantity {
	q := Quantity(v)
	return &q
}

// Int resolves an optional quantity to a non-negative whole number.
// Missing, non-finite, negative and out-of-range values resolve to 0.
func (q *Quantity) Int() int64 {
	if q == nil {
		return 0
	}
	v := float64(*q)
	if math.IsNaN(v) || v < 0 || v >= math.MaxInt64 {
		return 0
	}
	return int64(v)
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*q = 0
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*q = parseQuantity(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*q = parseQuantity(string(data))
	}
	return nil
}

func (q Quantity) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(q))
}

func (q *Quantity) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	*q = 0
	switch t {
	case bsontype.Double:
		if v, ok := raw.DoubleOK(); ok {
			*q = sanitize(v)
		}
	case bsontype.Int32:
		if v, ok := raw.Int32OK(); ok {
			*q = Quantity(v)
		}
	case bsontype.Int64:
		if v, ok := raw.Int64OK(); ok {
			*q = Quantity(v)
		}
	case bsontype.Decimal128:
		if v, ok := raw.Decimal128OK(); ok {
			*q = parseQuantity(v.String())
		}
	case bsontype.String:
		if v, ok := raw.StringValueOK(); ok {
			*q = parseQuantity(v)
		}
	}
	return nil
}

func parseQuantity(s string) Quantity {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

func sanitize(v float64) Quantity {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Quantity(v)
}
