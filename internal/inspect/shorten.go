package inspect

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const shortenPlaceholder = " [...]"

// Shorten collapses runs of whitespace and, if the result is wider than
// width, drops trailing words so that it fits together with a " [...]" marker.
func Shorten(text string, width int) string {
	words := strings.Fields(text)
	joined := strings.Join(words, " ")
	if runewidth.StringWidth(joined) <= width {
		return joined
	}
	budget := width - runewidth.StringWidth(shortenPlaceholder)
	var b strings.Builder
	used := 0
	for _, word := range words {
		need := runewidth.StringWidth(word)
		if used > 0 {
			need++
		}
		if used+need > budget {
			break
		}
		if used > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		used += need
	}
	if used == 0 {
		return strings.TrimLeft(shortenPlaceholder, " ")
	}
	return b.String() + shortenPlaceholder
}
