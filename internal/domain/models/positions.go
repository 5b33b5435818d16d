// internal/domain/models/positions.go
package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Positions is a deduplicated set of position tags (e.g. "frontend",
// "backend", "designer") attached to a portfolio or project/study post.
//
// Legacy documents store the field either as a single string or as an
// array of strings; decoding normalizes both shapes into this one type
// so the rest of the code never branches on the stored shape.
type Positions []string

// NormalizePositions trims whitespace, drops empties, and removes
// duplicates while preserving first-seen order.
func NormalizePositions(vals ...string) Positions {
	seen := make(map[string]struct{}, len(vals))
	out := make(Positions, 0, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Contains reports whether the set includes the given position tag.
func (p Positions) Contains(pos string) bool {
	for _, v := range p {
		if v == pos {
			return true
		}
	}
	return false
}

// UnmarshalBSONValue accepts both the legacy single-string shape and the
// array shape for the stored position field.
func (p *Positions) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*p = NormalizePositions(rv.StringValue())
		return nil
	case bsontype.Array:
		var vals []string
		if err := rv.Unmarshal(&vals); err != nil {
			return err
		}
		*p = NormalizePositions(vals...)
		return nil
	case bsontype.Null, bsontype.Undefined:
		*p = nil
		return nil
	}
	return fmt.Errorf("positions: cannot decode BSON type %s", t)
}
