// Package markdown converts article body text into sanitized HTML.
// Articles are authored in GitHub-flavored markdown with occasional embedded
// HTML (ad-placeholder markers); the output is always passed through
// bluemonday so nothing unsafe reaches the browser.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(), // raw HTML passes through goldmark; bluemonday filters it below
	),
)

// sanitizer strips everything UGCPolicy doesn't allow (scripts, event
// handlers, iframes). Ad markers are HTML comments, which bluemonday drops —
// the frontend re-inserts ads from the raw content field, not this HTML.
var sanitizer = bluemonday.UGCPolicy()

// ToHTML renders markdown source into sanitized HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}
