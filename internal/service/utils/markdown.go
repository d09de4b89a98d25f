// Package utils holds text processing helpers for the service layer.
package utils

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DescriptionRenderer turns markdown card descriptions into sanitized HTML.
// Rendering never fails the request: on a converter error the raw text is
// escaped through the sanitizer instead.
type DescriptionRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewDescriptionRenderer() *DescriptionRenderer {
	return &DescriptionRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *DescriptionRenderer) Render(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return r.policy.Sanitize(markdown)
	}
	return r.policy.Sanitize(strings.TrimSpace(buf.String()))
}
