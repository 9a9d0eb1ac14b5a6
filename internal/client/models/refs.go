package models

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// refID reduces a reference that is either a bare id or an embedded
// document to the id. Documents may carry the id as "_id" or "id".
func refID(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Raw
	case gjson.JSON:
		if !r.IsObject() {
			return ""
		}
		if id := r.Get("_id"); id.Exists() && id.String() != "" {
			return id.String()
		}
		return r.Get("id").String()
	default:
		return ""
	}
}

// NormalizeFavoriteIDs turns a raw favorites array (ids, recipe documents or
// a mix of both) into bare recipe ids. Entries without an id are dropped and
// duplicates are collapsed keeping first-seen order, so applying it to its
// own output is a no-op. Anything that is not an array yields nil.
func NormalizeFavoriteIDs(raw json.RawMessage) []string {
	res := gjson.ParseBytes(raw)
	if !res.IsArray() {
		return nil
	}

	ids := make([]string, 0)
	seen := make(map[string]struct{})
	res.ForEach(func(_, item gjson.Result) bool {
		id := refID(item)
		if id == "" {
			return true
		}
		if _, dup := seen[id]; dup {
			return true
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		return true
	})
	return ids
}

// NormalizeFavorites is NormalizeFavoriteIDs for Go values: a []string,
// []any of strings and maps, []Recipe, or anything else that marshals to a
// JSON array.
func NormalizeFavorites(v any) ([]string, error) {
	if raw, ok := v.(json.RawMessage); ok {
		return NormalizeFavoriteIDs(raw), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode favorites: %w", err)
	}
	return NormalizeFavoriteIDs(b), nil
}
