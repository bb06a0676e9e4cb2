package models

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Coordinate is a latitude or longitude in degrees. Older documents stored
// coordinates as strings or integers; those still decode.
type Coordinate float64

// UnmarshalBSONValue accepts every numeric BSON type plus numeric strings.
func (c *Coordinate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*c = Coordinate(raw.Double())
	case bsontype.Int32:
		*c = Coordinate(raw.Int32())
	case bsontype.Int64:
		*c = Coordinate(raw.Int64())
	case bsontype.Decimal128:
		parsed, err := strconv.ParseFloat(raw.Decimal128().String(), 64)
		if err != nil {
			return fmt.Errorf("cannot decode decimal coordinate: %w", err)
		}
		*c = Coordinate(parsed)
	case bsontype.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw.StringValue()), 64)
		if err != nil {
			return fmt.Errorf("cannot decode coordinate %q: %w", raw.StringValue(), err)
		}
		*c = Coordinate(parsed)
	case bsontype.Null:
		*c = 0
	default:
		return fmt.Errorf("cannot decode %s into Coordinate", t)
	}
	return nil
}

// MarshalBSONValue always writes a double so new documents stay uniform.
func (c Coordinate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(c))
}
