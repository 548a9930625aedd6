package transcript

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const emptyContent = "<empty-content>"

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Warner receives recoverable diagnostics raised while formatting content.
// *logger.LogEntry satisfies it.
type Warner interface {
	Warnf(format string, args ...any)
}

// FormatContent renders a message's content as display text. It never fails:
// blocks of unknown type are reported to warn and shown raw.
func FormatContent(msg Message, warn Warner) string {
	if msg.Content.Kind == ContentText {
		return wrapTag(blockTypeText, nonBlankLines(msg.Content.Text), "")
	}
	var b strings.Builder
	for _, block := range msg.Content.Blocks {
		b.WriteString(formatBlock(block, warn))
	}
	if b.Len() == 0 {
		return emptyContent
	}
	return b.String()
}

func formatBlock(block Block, warn Warner) string {
	switch block.Kind {
	case BlockText:
		return wrapTag(blockTypeText, nonBlankLines(block.Text), "\n")
	default:
		if warn != nil {
			warn.Warnf("unknown block type: %s. Block fields: %s. Continuing anyway.", block.Type, describeFields(block.Raw))
		}
		return fmt.Sprintf("\n<%s>\n%s\n</%s>", block.Type, pretty.Ugly(block.Raw), block.Type)
	}
}

// wrapTag wraps a single line inline and several lines as a block, the block
// form preceded by lead.
func wrapTag(tag string, lines []string, lead string) string {
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("<%s>%s</%s>", tag, lines[0], tag)
	default:
		return fmt.Sprintf("%s<%s>\n%s\n</%s>", lead, tag, strings.Join(lines, "\n"), tag)
	}
}

// nonBlankLines splits text into lines with trailing whitespace removed,
// dropping lines that are blank.
func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// describeFields lists a block's fields in export order with their JSON kinds,
// e.g. `"type": string, "url": string`.
func describeFields(raw []byte) string {
	var parts []string
	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		parts = append(parts, fmt.Sprintf("%q: %s", key.String(), valueKind(value)))
		return true
	})
	return strings.Join(parts, ", ")
}

func valueKind(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Null:
		return "null"
	default:
		if v.IsArray() {
			return "array"
		}
		return "object"
	}
}
