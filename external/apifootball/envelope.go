package apifootball

import (
	"fmt"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-mcp/internal/platform/jsonfield"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
)

// envelopeError turns a non-empty "errors" member into ErrUpstreamUnavailable.
// API-Football reports bad keys and plan limits with HTTP 200.
func envelopeError(root any) error {
	raw, ok := jsonfield.Lookup(root, "errors")
	if !ok {
		return nil
	}

	var messages []string
	switch typed := raw.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			messages = append(messages, fmt.Sprintf("%s: %v", key, typed[key]))
		}
	case []any:
		for _, item := range typed {
			messages = append(messages, fmt.Sprint(item))
		}
	case string:
		if strings.TrimSpace(typed) != "" {
			messages = append(messages, typed)
		}
	}
	if len(messages) == 0 {
		return nil
	}
	return crerr.Wrapf(usecase.ErrUpstreamUnavailable, "apifootball rejected request: %s", strings.Join(messages, "; "))
}

func responseItems(root any) ([]any, error) {
	raw, ok := jsonfield.Lookup(root, "response")
	if !ok {
		return nil, crerr.Wrap(usecase.ErrMalformedResponse, "response member missing")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "response is %T, want array", raw)
	}
	return items, nil
}

func firstResponseItem(root any, entity string) (any, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 || items[0] == nil {
		return nil, crerr.Wrapf(usecase.ErrNotFound, "%s", entity)
	}
	return items[0], nil
}

func missingField(entity, path string) error {
	return crerr.Wrapf(usecase.ErrMalformedResponse, "%s: %s missing", entity, path)
}
