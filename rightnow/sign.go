package rightnow

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

const (
	// DefaultUser is the identity requests are permissioned as unless overridden.
	DefaultUser = "hl.api@hivelive.com"
	// DefaultVersion is the API version sent with every request.
	DefaultVersion = "2010-05-15"

	signatureVersion = "2"
	responseFormat   = "json"
)

// Params holds action-specific request parameters. Values may be any type
// convertible to a string (strings, integers, floats, json.Number, bools).
type Params map[string]any

// Signer builds canonical signed parameter sets. It is safe for concurrent use.
type Signer struct {
	apiKey    string
	secretKey string
	user      string
	version   string
}

// NewSigner creates a Signer. Empty user and version fall back to the defaults.
func NewSigner(apiKey, secretKey, user, version string) *Signer {
	if user == "" {
		user = DefaultUser
	}
	if version == "" {
		version = DefaultVersion
	}
	return &Signer{
		apiKey:    apiKey,
		secretKey: secretKey,
		user:      user,
		version:   version,
	}
}

// Sign returns the full parameter set for action. Only the five base
// parameters are signed; extra params are applied last and override base
// keys on collision. An empty as signs with the signer's default user.
func (s *Signer) Sign(action string, extra Params, as string) (url.Values, error) {
	if as == "" {
		as = s.user
	}

	base := map[string]string{
		"Action":           action,
		"ApiKey":           s.apiKey,
		"PermissionedAs":   as,
		"SignatureVersion": signatureVersion,
		"version":          s.version,
	}

	values := make(url.Values, len(base)+len(extra)+2)
	for k, v := range base {
		values.Set(k, v)
	}
	values.Set("Signature", s.signature(base))
	values.Set("format", responseFormat)

	for k, v := range extra {
		str, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", k, err)
		}
		values.Set(k, str)
	}

	return values, nil
}

func (s *Signer) signature(params map[string]string) string {
	mac := hmac.New(sha1.New, []byte(s.secretKey))
	mac.Write([]byte(signingString(params)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// signingString concatenates key+value pairs ordered by case-insensitive key.
func signingString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(params[k])
	}
	return sb.String()
}
