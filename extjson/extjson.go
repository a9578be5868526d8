// Package extjson converts between native Go values and the tagged-wrapper
// shapes of MongoDB extended JSON ({"$numberInt":"20"}, {"$numberDouble":"89.95"},
// {"$date":{"$numberLong":"<epoch-ms>"}}). Reads accept either the tagged or
// the plain shape; writes always produce the tagged shape. BSON round-trips as
// native int32/int64/double/datetime.
package extjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Int is an integer that marshals to {"$numberInt":"n"} (or $numberLong when
// it does not fit in 32 bits) and unmarshals from tagged or plain JSON.
type Int int64

// Double is a float that marshals to {"$numberDouble":"f"} and unmarshals
// from tagged or plain JSON.
type Double float64

// DateTime is a timestamp that marshals to {"$date":{"$numberLong":"ms"}}
// and unmarshals from the tagged shape, RFC 3339 strings, or epoch millis.
type DateTime time.Time

func (i Int) MarshalJSON() ([]byte, error) {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return json.Marshal(map[string]string{"$numberInt": strconv.FormatInt(int64(i), 10)})
	}
	return json.Marshal(map[string]string{"$numberLong": strconv.FormatInt(int64(i), 10)})
}

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '{' {
		var wrapper map[string]string
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return fmt.Errorf("invalid integer wrapper: %w", err)
		}
		for _, key := range []string{"$numberInt", "$numberLong"} {
			if s, ok := wrapper[key]; ok {
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid %s value %q", key, s)
				}
				*i = Int(n)
				return nil
			}
		}
		if s, ok := wrapper["$numberDouble"]; ok {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("invalid $numberDouble value %q", s)
			}
			*i = Int(f)
			return nil
		}
		return fmt.Errorf("unrecognized integer wrapper %s", data)
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*i = Int(n)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*i = Int(f)
	return nil
}

func (i Int) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return bson.MarshalValue(int32(i))
	}
	return bson.MarshalValue(int64(i))
}

func (i *Int) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int32:
		*i = Int(rv.Int32())
	case bsontype.Int64:
		*i = Int(rv.Int64())
	case bsontype.Double:
		*i = Int(rv.Double())
	case bsontype.Null:
	default:
		return fmt.Errorf("cannot decode %v into an integer", t)
	}
	return nil
}

func (d Double) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"$numberDouble": strconv.FormatFloat(float64(d), 'f', -1, 64)})
}

func (d *Double) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '{' {
		var wrapper map[string]string
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return fmt.Errorf("invalid double wrapper: %w", err)
		}
		for _, key := range []string{"$numberDouble", "$numberInt", "$numberLong"} {
			if s, ok := wrapper[key]; ok {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("invalid %s value %q", key, s)
				}
				*d = Double(f)
				return nil
			}
		}
		return fmt.Errorf("unrecognized double wrapper %s", data)
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid double %s", data)
	}
	*d = Double(f)
	return nil
}

func (d Double) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(d))
}

func (d *Double) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*d = Double(rv.Double())
	case bsontype.Int32:
		*d = Double(rv.Int32())
	case bsontype.Int64:
		*d = Double(rv.Int64())
	case bsontype.Null:
	default:
		return fmt.Errorf("cannot decode %v into a double", t)
	}
	return nil
}

// Time returns the native time value.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	ms := time.Time(d).UnixMilli()
	return json.Marshal(map[string]map[string]string{
		"$date": {"$numberLong": strconv.FormatInt(ms, 10)},
	})
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '{' {
		var wrapper struct {
			Date json.RawMessage `json:"$date"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || wrapper.Date == nil {
			return fmt.Errorf("unrecognized date wrapper %s", data)
		}
		ts, err := parseDateValue(wrapper.Date)
		if err != nil {
			return err
		}
		*d = DateTime(ts)
		return nil
	}

	ts, err := parseDateValue(data)
	if err != nil {
		return err
	}
	*d = DateTime(ts)
	return nil
}

// parseDateValue accepts {"$numberLong":"ms"}, an RFC 3339 (or date-only)
// string, or a plain epoch-milliseconds number.
func parseDateValue(data []byte) (time.Time, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return time.Time{}, fmt.Errorf("empty date value")
	}

	switch data[0] {
	case '{':
		var inner map[string]string
		if err := json.Unmarshal(data, &inner); err != nil {
			return time.Time{}, fmt.Errorf("invalid date wrapper: %w", err)
		}
		if s, ok := inner["$numberLong"]; ok {
			ms, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return time.Time{}, fmt.Errorf("invalid $numberLong value %q", s)
			}
			return time.UnixMilli(ms).UTC(), nil
		}
		return time.Time{}, fmt.Errorf("unrecognized date wrapper %s", data)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return time.Time{}, err
		}
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			return ts, nil
		}
		if ts, err := time.Parse("2006-01-02", s); err == nil {
			return ts.UTC(), nil
		}
		return time.Time{}, fmt.Errorf("invalid date string %q", s)
	default:
		var ms int64
		if err := json.Unmarshal(data, &ms); err != nil {
			return time.Time{}, fmt.Errorf("invalid date %s", data)
		}
		return time.UnixMilli(ms).UTC(), nil
	}
}

func (d DateTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(primitive.NewDateTimeFromTime(time.Time(d)))
}

func (d *DateTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		*d = DateTime(time.UnixMilli(rv.DateTime()).UTC())
	case bsontype.Null:
	default:
		return fmt.Errorf("cannot decode %v into a datetime", t)
	}
	return nil
}

// Normalize walks a decoded JSON tree and replaces every tagged wrapper with
// its native value: int64 for $numberInt/$numberLong, float64 for
// $numberDouble, time.Time for $date. Everything else passes through
// unchanged. Used on partial-update bodies where the field set is open.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 1 {
			for key, inner := range t {
				if native, ok := unwrap(key, inner); ok {
					return native
				}
			}
		}
		out := make(map[string]any, len(t))
		for key, inner := range t {
			out[key] = Normalize(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for idx, inner := range t {
			out[idx] = Normalize(inner)
		}
		return out
	default:
		return v
	}
}

// CoerceDate converts an update value into a timestamp. Tagged wrappers are
// already time.Time after Normalize; plain epoch-millis numbers and RFC 3339
// (or date-only) strings are accepted too.
func CoerceDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts, true
		}
		if ts, err := time.Parse("2006-01-02", t); err == nil {
			return ts.UTC(), true
		}
	case float64:
		return time.UnixMilli(int64(t)).UTC(), true
	case int64:
		return time.UnixMilli(t).UTC(), true
	}
	return time.Time{}, false
}

func unwrap(key string, inner any) (any, bool) {
	switch key {
	case "$numberInt", "$numberLong":
		if s, ok := inner.(string); ok {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n, true
			}
		}
	case "$numberDouble":
		if s, ok := inner.(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	case "$date":
		switch d := inner.(type) {
		case map[string]any:
			if s, ok := d["$numberLong"].(string); ok {
				if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
					return time.UnixMilli(ms).UTC(), true
				}
			}
		case string:
			if ts, err := time.Parse(time.RFC3339, d); err == nil {
				return ts, true
			}
		case float64:
			return time.UnixMilli(int64(d)).UTC(), true
		}
	}
	return nil, false
}
