package transcript

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func threaded(id string, role Role, text string, threads ...[]Message) Message {
	msg := Message{UUID: id, Role: role, Content: TextContent(text), HasThreads: len(threads) > 0}
	for _, th := range threads {
		msg.Threads = append(msg.Threads, Thread{Messages: th})
	}
	return msg
}

func renderString(t *testing.T, r *Renderer, msgs ...Message) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(&buf, Document{Messages: msgs}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestRenderThreads_TwoThreadsInOrder(t *testing.T) {
	r := NewRenderer(Options{Warner: &recordingWarner{}})
	got := renderString(t, r,
		threaded("aaaaaaaa-0001", RoleUser, "q",
			[]Message{threaded("bbbbbbbb-0001", RoleAssistant, "r1")},
			[]Message{threaded("cccccccc-0001", RoleAssistant, "r2")},
		),
	)
	want := strings.Join([]string{
		"└─ [00] User      aaaaaa [root]: <text>q</text>",
		"      ⇢ thread-0",
		"      └─ [00] Assistant bbbbbb [branch]: <text>r1</text>",
		"      ⇢ thread-1",
		"      └─ [00] Assistant cccccc [branch]: <text>r2</text>",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected tree:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderThreads_ConnectorsSwitchOnLastSibling(t *testing.T) {
	r := NewRenderer(Options{Warner: &recordingWarner{}})
	got := renderString(t, r,
		threaded("aaaaaaaa", RoleUser, "q",
			[]Message{
				threaded("bbbbbbbb", RoleAssistant, "r1"),
				threaded("cccccccc", RoleUser, "follow"),
			},
		),
		threaded("dddddddd", RoleAssistant, "a"),
		threaded("eeeeeeee", "system", "s"),
	)
	want := strings.Join([]string{
		"├─ [00] User      aaaaaa [root]: <text>q</text>",
		"│  │  ⇢ thread-0",
		"│  │  ├─ [00] Assistant bbbbbb [branch]: <text>r1</text>",
		"│  │  └─ [01] User      cccccc [branch]: <text>follow</text>",
		"├─ [01] Assistant dddddd [root]: <text>a</text>",
		"└─ [02] <missing-role> eeeeee [root]: <text>s</text>",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected tree:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestRenderThreads_DepthFollowsNesting(t *testing.T) {
	const depth = 4
	leaf := []Message{threaded(uuid.NewString(), RoleAssistant, "leaf")}
	for i := 1; i < depth; i++ {
		leaf = []Message{threaded(uuid.NewString(), RoleUser, "mid", leaf)}
	}
	root := threaded(uuid.NewString(), RoleUser, "root", leaf)

	got := renderString(t, NewRenderer(Options{Warner: &recordingWarner{}}), root)
	maxLevel := 0
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		idx := strings.Index(line, cornerConnector)
		if idx < 0 {
			continue
		}
		level := len([]rune(line[:idx])) / len([]rune(blankIndent+blankIndent))
		if level > maxLevel {
			maxLevel = level
		}
		wantTag := "[branch]"
		if level == 0 {
			wantTag = "[root]"
		}
		if !strings.Contains(line, wantTag) {
			t.Fatalf("line at level %d lacks %s: %q", level, wantTag, line)
		}
	}
	if maxLevel != depth {
		t.Fatalf("max indentation level = %d, want %d\n%s", maxLevel, depth, got)
	}
}

func TestRenderThreads_ShortIDAndEmptyThread(t *testing.T) {
	id := uuid.NewString()
	msg := threaded(id, RoleUser, "q")
	msg.HasThreads = true
	msg.Threads = []Thread{{}}
	got := renderString(t, NewRenderer(Options{Warner: &recordingWarner{}}), msg, threaded("ab", RoleAssistant, "short"))
	if !strings.Contains(got, " "+id[:6]+" [root]") {
		t.Fatalf("short id %q missing:\n%s", id[:6], got)
	}
	if strings.Contains(got, id[:7]) {
		t.Fatalf("uuid not truncated:\n%s", got)
	}
	if !strings.Contains(got, "│  │  ⇢ thread-0\n└─ [01] Assistant ab [root]") {
		t.Fatalf("empty thread should render its header only:\n%s", got)
	}
}

func TestRenderThreads_MissingUUID(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Messages: []Message{
		threaded("aaaaaaaa", RoleUser, "q", []Message{{Role: RoleAssistant, Content: TextContent("r")}}),
	}}
	err := NewRenderer(Options{Warner: &recordingWarner{}}).Render(&buf, doc)
	if !IsStructural(err) {
		t.Fatalf("expected structural fault, got %v", err)
	}
}

func TestRenderThreads_UnknownBlockWarns(t *testing.T) {
	doc, err := Decode([]byte(`{"messages": [{"uuid": "abcdef12", "role": "assistant", "threads": [],
		"content": [{"type": "image", "url": "x"}]}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	warn := &recordingWarner{}
	var buf bytes.Buffer
	if err := NewRenderer(Options{Warner: warn}).Render(&buf, doc); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(warn.lines) != 1 {
		t.Fatalf("expected one warning, got %v", warn.lines)
	}
	want := "└─ [00] Assistant abcdef [root]: \n<image>\n{\"type\":\"image\",\"url\":\"x\"}\n</image>\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
