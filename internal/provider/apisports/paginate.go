package apisports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// collect fetches every page of a list endpoint and flattens the items in
// arrival order.
//
// Collection stops when the paging descriptor reports current >= total, when
// the envelope carries upstream errors, when a page has no items, or at the
// max-pages cap. With partial results enabled a failing page after the first
// ends collection with a warning and the items gathered so far are returned.
// A failure before anything was collected, or a rejected key, is always
// returned.
func (c *Client) collect(ctx context.Context, path string, fixed url.Values) ([]json.RawMessage, error) {
	var all []json.RawMessage

	for page := 1; ; page++ {
		params := cloneValues(fixed)
		if page > 1 {
			params.Set("page", strconv.Itoa(page))
		}

		items, env, err := c.fetchPage(ctx, path, params)
		if err != nil {
			var protoErr *ProtocolError
			if errors.As(err, &protoErr) {
				c.logger.Warn("upstream reported errors, stopping collection",
					"path", path, "page", page, "collected", len(all), "errors", protoErr.Messages)
				return all, nil
			}
			if c.partial && len(all) > 0 && !rejected(err) {
				c.logger.Warn("page fetch failed, returning partial results",
					"path", path, "page", page, "collected", len(all), "error", err)
				return all, nil
			}
			return nil, fmt.Errorf("collect %s page %d: %w", path, page, err)
		}

		if len(items) == 0 {
			break
		}
		all = append(all, items...)

		if env.Paging.done(page) {
			break
		}
		if page >= c.maxPages {
			c.logger.Warn("max pages reached", "path", path, "max_pages", c.maxPages, "collected", len(all))
			break
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, path string, params url.Values) ([]json.RawMessage, *envelope, error) {
	env, err := c.get(ctx, path, params)
	if err != nil {
		return nil, nil, err
	}
	if err := env.protocolError(path); err != nil {
		return nil, env, err
	}
	items, err := env.items()
	if err != nil {
		return nil, env, err
	}
	return items, env, nil
}

// rejected reports whether err wraps a 401/403 from upstream.
func rejected(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Rejected()
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
