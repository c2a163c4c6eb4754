// Package parsers turns the free-text inputs the HTTP surface accepts into
// concrete values.
package parsers

import (
	"errors"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnparseableTeeTime means the text contained no recognizable time
// expression.
var ErrUnparseableTeeTime = errors.New("could not parse tee time")

// TeeTimeParser resolves natural-language tee times ("tomorrow at 9am",
// "saturday 7:30") against a base date.
type TeeTimeParser struct {
	w *when.Parser
}

// NewTeeTimeParser builds a parser with the English and common rule sets.
func NewTeeTimeParser() *TeeTimeParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &TeeTimeParser{w: w}
}

// Parse resolves text relative to base. RFC 3339 timestamps are accepted
// directly so API clients can skip the natural-language path.
func (p *TeeTimeParser) Parse(text string, base time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, nil
	}

	r, err := p.w.Parse(text, base)
	if err != nil {
		return time.Time{}, err
	}
	if r == nil {
		return time.Time{}, ErrUnparseableTeeTime
	}
	return r.Time, nil
}
