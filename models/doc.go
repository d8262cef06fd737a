// Package models defines the RightNow Community entities returned by the API.
//
// Entities are populated from response payloads whose keys have already been
// normalized to snake_case. Decoding is weakly typed, so numeric strings and
// json.Number values land in integer fields, and merging into an existing
// entity only overwrites the attributes present in the payload. Attributes
// without a matching field are kept in Extra.
package models
