package extjson

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIntUnmarshalTaggedAndPlain(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Int
	}{
		{"numberInt", `{"$numberInt":"20"}`, 20},
		{"numberLong", `{"$numberLong":"9000000000"}`, 9000000000},
		{"numberDouble", `{"$numberDouble":"20.0"}`, 20},
		{"plain", `20`, 20},
		{"plainFloat", `20.0`, 20},
		{"negative", `{"$numberInt":"-3"}`, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Int
			require.NoError(t, json.Unmarshal([]byte(tc.input), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIntMarshalTagged(t *testing.T) {
	data, err := json.Marshal(Int(20))
	require.NoError(t, err)
	assert.JSONEq(t, `{"$numberInt":"20"}`, string(data))

	data, err = json.Marshal(Int(9000000000))
	require.NoError(t, err)
	assert.JSONEq(t, `{"$numberLong":"9000000000"}`, string(data))
}

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []Int{0, 1, -1, 150, 2147483647, 2147483648, -9000000000} {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var got Int
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}
}

func TestIntUnmarshalRejectsGarbage(t *testing.T) {
	var got Int
	assert.Error(t, json.Unmarshal([]byte(`{"$numberInt":"abc"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`{"$oid":"x"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`"20"`), &got))
}

func TestDoubleUnmarshalTaggedAndPlain(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Double
	}{
		{"numberDouble", `{"$numberDouble":"89.95"}`, 89.95},
		{"numberInt", `{"$numberInt":"90"}`, 90},
		{"plain", `89.95`, 89.95},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Double
			require.NoError(t, json.Unmarshal([]byte(tc.input), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	for _, v := range []Double{0, 89.95, -0.5, 12345.6789} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		assert.Contains(t, string(data), "$numberDouble")

		var got Double
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}
}

func TestDateTimeUnmarshalShapes(t *testing.T) {
	want := time.UnixMilli(1735689600000).UTC() // 2025-01-01T00:00:00Z

	cases := []struct {
		name  string
		input string
	}{
		{"tagged", `{"$date":{"$numberLong":"1735689600000"}}`},
		{"dateString", `{"$date":"2025-01-01T00:00:00Z"}`},
		{"rfc3339", `"2025-01-01T00:00:00Z"`},
		{"dateOnly", `"2025-01-01"`},
		{"epochMillis", `1735689600000`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got DateTime
			require.NoError(t, json.Unmarshal([]byte(tc.input), &got))
			assert.True(t, want.Equal(got.Time()), "got %v", got.Time())
		})
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	orig := DateTime(time.Date(2025, 6, 15, 13, 45, 30, 250_000_000, time.UTC))

	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"$date"`)
	assert.Contains(t, string(data), `"$numberLong"`)

	var got DateTime
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, orig.Time().Equal(got.Time()))
}

func TestBSONRoundTrip(t *testing.T) {
	type doc struct {
		Count Int      `bson:"count"`
		Price Double   `bson:"price"`
		When  DateTime `bson:"when"`
	}

	orig := doc{
		Count: 150,
		Price: 89.95,
		When:  DateTime(time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)),
	}

	raw, err := bson.Marshal(orig)
	require.NoError(t, err)

	var got doc
	require.NoError(t, bson.Unmarshal(raw, &got))
	assert.Equal(t, orig.Count, got.Count)
	assert.Equal(t, orig.Price, got.Price)
	assert.True(t, orig.When.Time().Equal(got.When.Time()))
}

func TestBSONDecodesPlainNumerics(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"count": int64(7), "price": int32(12)})
	require.NoError(t, err)

	var got struct {
		Count Int    `bson:"count"`
		Price Double `bson:"price"`
	}
	require.NoError(t, bson.Unmarshal(raw, &got))
	assert.Equal(t, Int(7), got.Count)
	assert.Equal(t, Double(12), got.Price)
}

func TestNormalizeUnwrapsNestedWrappers(t *testing.T) {
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Urban Jacket",
		"in_stock": {"$numberInt": "150"},
		"price": {"$numberDouble": "89.95"},
		"date": {"$date": {"$numberLong": "1735689600000"}},
		"sizes": ["S", "M"],
		"nested": {"qty": {"$numberLong": "9000000000"}}
	}`), &body))

	got := Normalize(body).(map[string]any)

	assert.Equal(t, "Urban Jacket", got["name"])
	assert.Equal(t, int64(150), got["in_stock"])
	assert.Equal(t, 89.95, got["price"])
	assert.Equal(t, time.UnixMilli(1735689600000).UTC(), got["date"])
	assert.Equal(t, []any{"S", "M"}, got["sizes"])
	assert.Equal(t, int64(9000000000), got["nested"].(map[string]any)["qty"])
}

func TestCoerceDateShapes(t *testing.T) {
	want := time.UnixMilli(1735689600000).UTC()

	// A plain epoch-millis number comes out of Normalize as a float64 and
	// must still end up a timestamp, not a stored double.
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"date":1735689600000}`), &body))
	normalized := Normalize(body).(map[string]any)
	got, ok := CoerceDate(normalized["date"])
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = CoerceDate("2025-01-01T00:00:00Z")
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = CoerceDate("2025-01-01")
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = CoerceDate(want)
	require.True(t, ok)
	assert.True(t, want.Equal(got))

	_, ok = CoerceDate("not-a-date")
	assert.False(t, ok)
	_, ok = CoerceDate([]any{"2025-01-01"})
	assert.False(t, ok)
}

func TestNormalizePassesPlainValuesThrough(t *testing.T) {
	assert.Equal(t, "hello", Normalize("hello"))
	assert.Equal(t, 3.5, Normalize(3.5))
	assert.Nil(t, Normalize(nil))

	// A one-key object that is not a recognized wrapper stays an object.
	got := Normalize(map[string]any{"city": "San José"}).(map[string]any)
	assert.Equal(t, "San José", got["city"])
}
