package synthesis

import "strings"

// sanitizeReplacer strips markdown emphasis markers and quote characters
// that are known to break TTS backends' text parsers.
var sanitizeReplacer = strings.NewReplacer(
	"*", "",
	"_", "",
	`"`, "",
	"'", "",
)

// Sanitize prepares dialogue text for the synthesis backend: emphasis and
// quote characters are removed and newlines collapse to single spaces.
// The result may be empty, in which case the line is skipped entirely.
func Sanitize(text string) string {
	text = sanitizeReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
