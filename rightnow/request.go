package rightnow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/s0up4200/rightnow")

// Request performs a single signed call of action and returns the parsed
// JSON body: a map[string]any or a []any. Numbers are json.Number.
func (c *Client) Request(ctx context.Context, action string, params Params, opts ...CallOption) (any, error) {
	resp, err := c.send(ctx, action, params, newCallOptions(opts))
	if err != nil {
		return nil, err
	}
	return Parse(resp)
}

// send signs params and performs the HTTP exchange, returning the raw response.
func (c *Client) send(ctx context.Context, action string, params Params, opts callOptions) (_ *Response, err error) {
	ctx, span := tracer.Start(ctx, "rightnow."+action)
	span.SetAttributes(
		attribute.String("rightnow.action", action),
		attribute.String("rightnow.verb", opts.verb),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	values, err := c.signer.Sign(action, params, opts.as)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s request: %w", action, err)
	}

	var req *http.Request
	switch opts.verb {
	case http.MethodGet:
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+values.Encode(), nil)
	case http.MethodPost:
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(values.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, fmt.Errorf("unsupported verb %q for %s", opts.verb, action)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Trace().
		Str("action", action).
		Str("verb", opts.verb).
		Str("as", values.Get("PermissionedAs")).
		Msg("Making RightNow API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", action, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug {
		c.logger.Debug().
			Str("action", action).
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("RightNow API response")
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
