package transcript

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// runState tracks whether consecutive assistant turns are being collapsed
// into one visual run.
type runState int

const (
	runNone runState = iota
	runOpen
)

const (
	nestedIndent     = "    "
	emptyPlaceholder = nestedIndent + "--"
)

func (r *Renderer) renderFlat(lw *lineWriter, msgs []Message) error {
	state := runNone
	for i, msg := range msgs {
		if msg.Role == "" {
			return structural(i, "message has no role")
		}
		body := strings.TrimSpace(FormatContent(msg, r.warn))
		switch {
		case msg.Role == RoleAssistant && state == runNone:
			lw.line("")
			lw.linef("[%02d]", i)
			lw.linef("<%s>", roleTitle(msg.Role))
			if body == "" {
				lw.line(emptyPlaceholder)
			} else {
				lw.line(body)
			}
			state = runOpen
		case msg.Role == RoleAssistant:
			lw.linef("%s[%02d]", nestedIndent, i)
			if body == "" {
				lw.line(emptyPlaceholder)
			} else {
				lw.line(indentLines(body, nestedIndent))
			}
		case msg.Role == RoleUser:
			if state == runOpen {
				lw.linef("</%s>", roleTitle(RoleAssistant))
				lw.line("")
			}
			label := roleTitle(msg.Role)
			lw.linef("[%02d]", i)
			lw.linef("<%s>", label)
			lw.line(body)
			lw.linef("</%s>", label)
			state = runNone
		default:
			if state != runOpen {
				return structural(i, "role %q outside an assistant run", msg.Role)
			}
			if !msg.HasName {
				return structural(i, "role %q requires a name", msg.Role)
			}
			label := fmt.Sprintf("%s: %s", roleTitle(msg.Role), msg.Name)
			lw.linef("%s[%02d]", nestedIndent, i)
			lw.line(indentLines(fmt.Sprintf("<%s>\n%s\n</%s>", label, body, label), nestedIndent))
		}
		if lw.err != nil {
			return lw.err
		}
	}
	return lw.err
}

func roleTitle(role Role) string {
	return cases.Title(language.Und).String(string(role))
}

// indentLines prefixes every line that is not blank.
func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
