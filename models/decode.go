package models

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/go-viper/mapstructure/v2"
)

// hashPattern extracts an entity hash from the tail of its API URI.
var hashPattern = regexp.MustCompile(`[0-9a-z]{10}$`)

// decode merges data into target, collecting top-level keys that match no
// field into extra.
func decode(data map[string]any, target any, extra *map[string]any) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           target,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(data); err != nil {
		return err
	}

	for _, key := range md.Unused {
		value, ok := data[key]
		if !ok {
			continue
		}
		if *extra == nil {
			*extra = make(map[string]any)
		}
		(*extra)[key] = value
	}
	return nil
}

// withURIAlias maps a bare "uri" attribute onto "api_uri".
func withURIAlias(data map[string]any) map[string]any {
	uri, ok := data["uri"]
	if !ok {
		return data
	}
	if _, exists := data["api_uri"]; exists {
		return data
	}
	out := maps.Clone(data)
	delete(out, "uri")
	out["api_uri"] = uri
	return out
}

// hashFromURI returns the hash embedded at the end of an API URI, or "".
func hashFromURI(uri string) string {
	return hashPattern.FindString(uri)
}

// attributes flattens an entity into a map keyed like its payload.
func attributes(entity any, extra map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(extra)+16)
	maps.Copy(out, extra)

	var fields map[string]any
	if err := mapstructure.Decode(entity, &fields); err != nil {
		return nil, fmt.Errorf("failed to flatten entity: %w", err)
	}
	maps.Copy(out, fields)
	return out, nil
}
