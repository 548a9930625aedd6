package transcript

const (
	teeConnector    = "├─"
	cornerConnector = "└─"
	pipeIndent      = "│  "
	blankIndent     = "   "
	threadMarker    = "⇢"
	shortIDLen      = 6
	missingRole     = "<missing-role>"
)

var roleLabels = map[Role]string{
	RoleUser:      "User     ",
	RoleAssistant: "Assistant",
}

func (r *Renderer) renderThreads(lw *lineWriter, msgs []Message, prefix string, inBranch bool) error {
	where := "root"
	if inBranch {
		where = "branch"
	}
	for i, msg := range msgs {
		if msg.UUID == "" {
			return structural(i, "message has no uuid")
		}
		last := i == len(msgs)-1
		connector, indent := teeConnector, pipeIndent
		if last {
			connector, indent = cornerConnector, blankIndent
		}
		lw.linef("%s%s [%02d] %s %s [%s]: %s", prefix, connector, i, roleLabel(msg.Role), shortID(msg.UUID), where, FormatContent(msg, r.warn))

		child := prefix + indent
		for t, th := range msg.Threads {
			lw.linef("%s%s%s thread-%d", child, indent, threadMarker, t)
			if err := r.renderThreads(lw, th.Messages, child+indent, true); err != nil {
				return err
			}
		}
		if lw.err != nil {
			return lw.err
		}
	}
	return lw.err
}

func roleLabel(role Role) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return missingRole
}

func shortID(id string) string {
	runes := []rune(id)
	if len(runes) > shortIDLen {
		return string(runes[:shortIDLen])
	}
	return id
}
