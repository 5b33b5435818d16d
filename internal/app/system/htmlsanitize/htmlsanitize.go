// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from user-generated content
// (comments, descriptions) before it is persisted.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// ugcPolicy returns the shared sanitizer policy. bluemonday policies are
// safe for concurrent use once built.
func ugcPolicy() *bluemonday.Policy {
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Sanitize returns s with scripts, event handlers, and other unsafe
// markup removed. Plain text passes through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugcPolicy().Sanitize(s)
}

// SanitizeTrimmed sanitizes and trims surrounding whitespace, for
// single-field inputs like comment content.
func SanitizeTrimmed(s string) string {
	return strings.TrimSpace(Sanitize(s))
}
