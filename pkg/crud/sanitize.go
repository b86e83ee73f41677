package crud

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from raw user input before it is stored on a
// draft. bluemonday entity-escapes the surviving text; drafts hold plain
// text, so the escaping is undone.
func Sanitize(raw string) string {
	return html.UnescapeString(strictPolicy.Sanitize(raw))
}
