package controllers

import (
	"errors"

	"clothing-store/extjson"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// recordID resolves the record id from either addressing convention:
// path parameter (/brands/:id) or query parameter (/brands?id=).
func recordID(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Query("id")
}

// bindPartialUpdate decodes an update body into the fields to merge,
// unwrapping any tagged extended-JSON values. The _id field is never
// overwritable.
func bindPartialUpdate(c *gin.Context) (bson.M, error) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, err
	}
	delete(raw, "_id")
	if len(raw) == 0 {
		return nil, errors.New("no fields to update")
	}

	fields := bson.M{}
	for key, value := range raw {
		fields[key] = extjson.Normalize(value)
	}
	return fields, nil
}

// numericField reads a normalized numeric update value, if present.
func numericField(fields bson.M, key string) (int64, bool) {
	switch v := fields[key].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
