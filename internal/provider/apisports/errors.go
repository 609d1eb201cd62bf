package apisports

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// HTTPError is a non-2xx status from API-Football. Body is truncated and is
// meant for logs only.
type HTTPError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Rejected() {
		return fmt.Sprintf("API-Football %s rejected the request (%d): check APISPORTS_KEY", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("API-Football %s returned %d", e.Path, e.StatusCode)
}

// Rejected reports whether upstream refused the credentials.
func (e *HTTPError) Rejected() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ProtocolError is a 2xx response whose envelope carries an errors payload.
type ProtocolError struct {
	Path     string
	Messages []string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("API-Football %s reported errors: %s", e.Path, strings.Join(e.Messages, "; "))
}

// IsUpstreamHTTP reports whether err wraps an *HTTPError.
func IsUpstreamHTTP(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}

// upstreamMessages flattens the errors field, which API-Football sends either
// as an array or as an object keyed by parameter name.
func upstreamMessages(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return []string{truncate(raw, 200)}
	}

	switch errs := v.(type) {
	case []interface{}:
		msgs := make([]string, 0, len(errs))
		for _, item := range errs {
			msgs = append(msgs, fmt.Sprint(item))
		}
		return msgs
	case map[string]interface{}:
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		msgs := make([]string, 0, len(keys))
		for _, k := range keys {
			msgs = append(msgs, fmt.Sprintf("%s: %v", k, errs[k]))
		}
		return msgs
	case nil:
		return nil
	case string:
		if errs == "" {
			return nil
		}
		return []string{errs}
	default:
		return []string{fmt.Sprint(errs)}
	}
}
