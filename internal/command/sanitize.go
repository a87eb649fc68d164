package command

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// plainText strips all markup from user input. Dreams are stored as plain
// text and escaped on output, so the entities bluemonday introduces are
// decoded again.
func plainText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
