package pagesum

import "strings"

// ContentPlaceholder marks where page content is inserted into a template.
const ContentPlaceholder = "{{content}}"

// promptSeparator divides template instructions from page content when the
// template carries no explicit placeholder.
const promptSeparator = "\n\n---\n\n"

// DefaultTemplate is the built-in summarization prompt. It asks for the five
// sections every output file is expected to contain.
const DefaultTemplate = `You are summarizing a technical blog post or raw developer thread for an
experienced programmer who wants the essence without rereading the source.

Produce a markdown summary with exactly these five sections, in this order,
each as a level-two heading:

## TL;DR
Two to four sentences capturing the core argument or finding.

## Code Patterns/Gotchas
Concrete patterns, APIs, pitfalls, or bugs discussed. Use short code
snippets where the source does.

## Things To Try
Actionable experiments or follow-ups a reader could attempt.

## Related Concepts
Adjacent topics, libraries, or techniques worth knowing about.

## Python Equivalents
If the content maps naturally onto Python idioms or libraries, show the
equivalents; otherwise write "Not applicable."

Summarize only what the content supports. Do not invent details.

Content:

` + ContentPlaceholder

// Template is a summarization prompt template. Page content is substituted
// for ContentPlaceholder, or appended after a separator when the template has
// no placeholder. Instructions always precede the content.
type Template string

// Render produces the full prompt for the given page content.
func (t Template) Render(content string) string {
	s := string(t)
	if strings.Contains(s, ContentPlaceholder) {
		return strings.ReplaceAll(s, ContentPlaceholder, content)
	}
	return s + promptSeparator + content
}
