// Package pathfilter provides glob-based message filtering using doublestar patterns.
package pathfilter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lintkit/sonarjson/internal/types"
)

// Filter holds the include and exclude patterns for path filtering
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter returns a filter that matches every path
func DefaultFilter() *Filter {
	return New([]string{"**"}, nil)
}

// MatchPath checks if a single path matches the filter criteria.
// Paths are normalized to forward slashes before matching.
func (f *Filter) MatchPath(path string) (bool, error) {
	path = strings.ReplaceAll(path, "\\", "/")

	included := false
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}

	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			return false, nil
		}
	}

	return true, nil
}

// Messages returns the messages whose paths match the filter, preserving order.
func (f *Filter) Messages(messages []types.Message) ([]types.Message, error) {
	result := make([]types.Message, 0, len(messages))
	for _, msg := range messages {
		match, err := f.MatchPath(msg.Path)
		if err != nil {
			return nil, err
		}
		if match {
			result = append(result, msg)
		}
	}
	return result, nil
}
