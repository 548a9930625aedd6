package transcript

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type recordingWarner struct {
	lines []string
}

func (w *recordingWarner) Warnf(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func TestFormatContent_PlainString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "single line", in: "hello", want: "<text>hello</text>"},
		{name: "multi line", in: "a\nb", want: "<text>\na\nb\n</text>"},
		{name: "blank only", in: "  \n\t\n", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "trailing whitespace and crlf", in: "a  \r\n\r\n b\t", want: "<text>\na\n b\n</text>"},
		{name: "blank lines dropped", in: "\n\nonly\n\n", want: "<text>only</text>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatContent(Message{Role: RoleUser, Content: TextContent(tc.in)}, nil)
			if got != tc.want {
				t.Fatalf("FormatContent(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatContent_Blocks(t *testing.T) {
	cases := []struct {
		name    string
		content Content
		want    string
	}{
		{name: "single text block", content: BlockContent(TextBlock("one")), want: "<text>one</text>"},
		{
			name:    "multi line block then single",
			content: BlockContent(TextBlock("x\ny"), TextBlock("z")),
			want:    "\n<text>\nx\ny\n</text><text>z</text>",
		},
		{name: "empty sequence", content: BlockContent(), want: emptyContent},
		{name: "absent content", content: Content{}, want: emptyContent},
		{name: "only blank text", content: BlockContent(TextBlock("  \n")), want: emptyContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			warn := &recordingWarner{}
			got := FormatContent(Message{Role: RoleAssistant, Content: tc.content}, warn)
			if got != tc.want {
				t.Fatalf("FormatContent = %q, want %q", got, tc.want)
			}
			if len(warn.lines) != 0 {
				t.Fatalf("unexpected warnings: %v", warn.lines)
			}
		})
	}
}

func TestFormatContent_UnknownBlockFallsBackToRaw(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"role":"user","content":[{"type": "image", "url": "x"}]}`), &msg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	warn := &recordingWarner{}
	got := FormatContent(msg, warn)
	want := "\n<image>\n{\"type\":\"image\",\"url\":\"x\"}\n</image>"
	if got != want {
		t.Fatalf("FormatContent = %q, want %q", got, want)
	}
	if len(warn.lines) != 1 {
		t.Fatalf("expected exactly one warning, got %v", warn.lines)
	}
	if !strings.Contains(warn.lines[0], "unknown block type: image") {
		t.Fatalf("warning does not name the type: %q", warn.lines[0])
	}
	if !strings.Contains(warn.lines[0], `"type": string, "url": string`) {
		t.Fatalf("warning does not list fields: %q", warn.lines[0])
	}
}

func TestFormatContent_MissingTypeListsFieldKindsInOrder(t *testing.T) {
	var msg Message
	raw := `{"role":"assistant","content":[{"url":"x","n":1,"ok":true,"meta":{},"list":[],"z":null}]}`
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	warn := &recordingWarner{}
	got := FormatContent(msg, warn)
	if !strings.HasPrefix(got, "\n<type-field-empty>\n") || !strings.HasSuffix(got, "\n</type-field-empty>") {
		t.Fatalf("unexpected fallback rendering %q", got)
	}
	wantFields := `"url": string, "n": number, "ok": bool, "meta": object, "list": array, "z": null`
	if len(warn.lines) != 1 || !strings.Contains(warn.lines[0], wantFields) {
		t.Fatalf("warning = %v, want fields %q", warn.lines, wantFields)
	}
}

func TestFormatContent_OneWarningPerUnknownBlock(t *testing.T) {
	var msg Message
	raw := `{"role":"assistant","content":[{"type":"tool_use","id":"1"},{"type":"text","text":"ok"},{"type":"tool_use","id":"2"}]}`
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	warn := &recordingWarner{}
	got := FormatContent(msg, warn)
	if len(warn.lines) != 2 {
		t.Fatalf("expected two warnings, got %v", warn.lines)
	}
	want := "\n<tool_use>\n{\"type\":\"tool_use\",\"id\":\"1\"}\n</tool_use><text>ok</text>\n<tool_use>\n{\"type\":\"tool_use\",\"id\":\"2\"}\n</tool_use>"
	if got != want {
		t.Fatalf("FormatContent = %q, want %q", got, want)
	}
}

func TestFormatContent_DoesNotMutateMessage(t *testing.T) {
	msg := Message{Role: RoleAssistant, Content: BlockContent(TextBlock(" a \n\n b "), TextBlock("c"))}
	before := Message{Role: RoleAssistant, Content: BlockContent(TextBlock(" a \n\n b "), TextBlock("c"))}
	FormatContent(msg, nil)
	if !reflect.DeepEqual(msg, before) {
		t.Fatalf("message mutated: %#v", msg)
	}
}
