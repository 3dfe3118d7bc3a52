// Package timefilter parses the "since" query parameter accepted by the
// history and analytics endpoints. Dates, RFC 3339 timestamps and English
// phrases such as "3 days ago" or "last monday" are understood.
package timefilter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnrecognized is returned when no layout or phrase matches.
var ErrUnrecognized = errors.New("unrecognized time filter")

// Parser resolves since expressions relative to a clock.
type Parser struct {
	w   *when.Parser
	now func() time.Time
}

// New returns a Parser using the English and common rule sets.
func New() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{w: w, now: time.Now}
}

// Parse returns nil for an empty expression.
func (p *Parser) Parse(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return &t, nil
	}

	res, err := p.w.Parse(raw, p.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnrecognized, raw, err)
	}
	if res == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognized, raw)
	}
	t := res.Time.UTC()
	return &t, nil
}
