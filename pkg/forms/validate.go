package forms

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries one message per failing field. It is produced
// before any network call and blocks submission.
type ValidationError struct {
	Problems map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Problems))
	for k := range e.Problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Problems[k]))
	}
	return "forms: " + strings.Join(parts, "; ")
}

// Problem returns the message recorded for field, if any.
func (e *ValidationError) Problem(field string) (string, bool) {
	msg, ok := e.Problems[field]
	return msg, ok
}

type check struct {
	problems map[string]string
}

func (c *check) add(field, msg string) {
	if c.problems == nil {
		c.problems = map[string]string{}
	}
	if _, dup := c.problems[field]; !dup {
		c.problems[field] = msg
	}
}

func (c *check) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, "is required")
	}
}

func (c *check) nonNegative(field string, v int64) {
	if v < 0 {
		c.add(field, "must not be negative")
	}
}

// requiredImage enforces an upload unless the record already carries one.
func (c *check) requiredImage(field string, att *Attachment, existingURL string) {
	if att == nil && strings.TrimSpace(existingURL) == "" {
		c.add(field, "an image is required")
	}
}

func (c *check) err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: c.problems}
}
