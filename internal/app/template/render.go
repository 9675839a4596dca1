package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/fwkit/internal/domain"
)

// Filter transforms a value before it is substituted for key.
type Filter func(key, value string) string

type renderOptions struct {
	filter Filter
}

type RenderOption func(*renderOptions)

// WithFilter applies f to every substituted value.
func WithFilter(f Filter) RenderOption {
	return func(o *renderOptions) { o.filter = f }
}

// RenderString replaces {{KEY}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string, opts ...RenderOption) (string, error) {
	if input == "" {
		return "", nil
	}

	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	var out strings.Builder
	out.Grow(len(input))

	rest := input
	offset := 0
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		pos := offset + start
		rest = rest[start+2:]
		offset = pos + 2

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.Error{
				Kind: domain.KindInvalidConfig,
				Msg:  fmt.Sprintf("unclosed template expression at offset %d", pos),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.Error{
				Kind: domain.KindInvalidConfig,
				Msg:  fmt.Sprintf("empty template expression at offset %d", pos),
			}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.Error{
				Kind: domain.KindMissingVar,
				Msg:  fmt.Sprintf("missing variable %q", key),
			}
		}
		if o.filter != nil {
			value = o.filter(key, value)
		}

		out.WriteString(value)
		rest = rest[end+2:]
		offset += end + 2
	}
}
