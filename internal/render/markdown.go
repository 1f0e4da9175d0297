package render

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// MarkdownToHTML converts GitHub-flavoured Markdown to an HTML fragment.
// Raw HTML in the input is not passed through.
func MarkdownToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return applyLayoutHooks(buf.String()), nil
}

var (
	reRiskHeading    = regexp.MustCompile(`(?i)<h2([^>]*)>\s*Risk Analysis\s*</h2>`)
	reNumberedHeader = regexp.MustCompile(`<h2([^>]*)>\s*([0-9]+)\.\s*([^<]*)</h2>`)
)

// applyLayoutHooks tags headings so print styles can break pages before
// the risk section and highlight numbered report sections.
func applyLayoutHooks(contentHTML string) string {
	out := reRiskHeading.ReplaceAllString(contentHTML, `<h2$1 data-page-break-before="true">Risk Analysis</h2>`)
	out = reNumberedHeader.ReplaceAllString(out, `<h2$1 data-section="$2">$2. $3</h2>`)
	return out
}
