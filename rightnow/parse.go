package rightnow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Response is a raw API response: the status code and the unparsed body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Parse validates a raw response and decodes its JSON body. A structured
// {"error": {...}} body is reported before any status check, so a non-200
// response carrying details yields the detailed error.
func Parse(resp *Response) (any, error) {
	body, err := decodeJSON(resp.Body)
	if err != nil {
		return nil, &JSONParseError{Body: string(resp.Body), Err: err}
	}

	if apiErr := structuredError(body); apiErr != nil {
		apiErr.StatusCode = resp.StatusCode
		apiErr.Body = string(resp.Body)
		return nil, apiErr
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Message:    fmt.Sprintf("API returned %d without explanation: %s", resp.StatusCode, resp.Body),
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}

	return body, nil
}

// decodeJSON decodes exactly one JSON object or array, keeping numbers as
// json.Number. Bare scalars and null are rejected.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	switch v.(type) {
	case map[string]any, []any:
		return v, nil
	default:
		return nil, fmt.Errorf("top-level value is %s, want an object or array", jsonKind(v))
	}
}

// jsonKind names the JSON type of a decoded scalar.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// structuredError returns the API error carried by a body of the exact form
// {"error": {...}}, or nil.
func structuredError(body any) *APIError {
	obj, ok := body.(map[string]any)
	if !ok || len(obj) != 1 {
		return nil
	}
	detail, ok := obj["error"].(map[string]any)
	if !ok {
		return nil
	}

	apiErr := &APIError{}
	if msg, ok := detail["message"]; ok && msg != nil {
		apiErr.Message = fmt.Sprint(msg)
	}
	if code, ok := detail["code"].(json.Number); ok {
		if n, err := code.Int64(); err == nil {
			apiErr.Code = int(n)
			apiErr.HasCode = true
		}
	}
	return apiErr
}
