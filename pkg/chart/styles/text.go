package styles

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes s for safe embedding in SVG text content and
// attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
