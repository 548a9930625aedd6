package transcript

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Role names the author of a message. Roles other than user and assistant
// (tool, system, ...) are tolerated.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Document is an exported chat log.
type Document struct {
	Messages []Message
}

// Message is one conversational turn.
type Message struct {
	UUID    string
	Role    Role
	Name    string
	HasName bool
	Content Content
	Threads []Thread
	// HasThreads is true when the export carried a threads key, even if it was empty.
	HasThreads bool
}

// Thread is an alternate continuation branching off its parent message.
type Thread struct {
	Messages []Message `json:"messages"`
}

// ContentKind tags the shape of a message's content.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentText
	ContentBlocks
)

// Content is either a plain string or a sequence of typed blocks.
type Content struct {
	Kind   ContentKind
	Text   string
	Blocks []Block
}

// TextContent builds plain string content.
func TextContent(s string) Content {
	return Content{Kind: ContentText, Text: s}
}

// BlockContent builds block sequence content.
func BlockContent(blocks ...Block) Content {
	return Content{Kind: ContentBlocks, Blocks: blocks}
}

// BlockKind is the recognised variant of a content block.
type BlockKind int

const (
	BlockUnknown BlockKind = iota
	BlockText
)

const (
	blockTypeText    = "text"
	missingBlockType = "type-field-empty"
)

// Block is one unit of block content. Raw keeps the block exactly as exported
// so unknown types can be shown verbatim.
type Block struct {
	Kind BlockKind
	Type string
	Text string
	Raw  json.RawMessage
}

// TextBlock builds a text block together with its raw form.
func TextBlock(text string) Block {
	raw, _ := json.Marshal(map[string]string{"type": blockTypeText, "text": text})
	return Block{Kind: BlockText, Type: blockTypeText, Text: text, Raw: raw}
}

func blockKindOf(typ string) BlockKind {
	switch typ {
	case blockTypeText:
		return BlockText
	default:
		return BlockUnknown
	}
}

func (d *Document) UnmarshalJSON(data []byte) error {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return structural(-1, "document must be a JSON object")
	}
	messages := root.Get("messages")
	if !messages.Exists() {
		return structural(-1, "document has no messages array")
	}
	if !messages.IsArray() {
		return structural(-1, "messages must be an array")
	}
	var wire struct {
		Messages []Message `json:"messages"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.Messages = wire.Messages
	return nil
}

func (m *Message) UnmarshalJSON(data []byte) error {
	root := gjson.ParseBytes(data)
	if root.Type == gjson.Null {
		return nil
	}
	if !root.IsObject() {
		return structural(-1, "message must be a JSON object")
	}
	var wire struct {
		UUID    string          `json:"uuid"`
		Role    string          `json:"role"`
		Name    *string         `json:"name"`
		Content json.RawMessage `json:"content"`
		Threads []Thread        `json:"threads"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	content, err := parseContent(wire.Content)
	if err != nil {
		return err
	}
	*m = Message{
		UUID:       wire.UUID,
		Role:       Role(wire.Role),
		Content:    content,
		Threads:    wire.Threads,
		HasThreads: root.Get("threads").Exists(),
	}
	if wire.Name != nil {
		m.Name = *wire.Name
		m.HasName = true
	}
	return nil
}

func parseContent(raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		return Content{}, nil
	}
	switch res := gjson.ParseBytes(raw); {
	case res.Type == gjson.Null:
		return Content{}, nil
	case res.Type == gjson.String:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Content{}, err
		}
		return TextContent(s), nil
	case res.IsArray():
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Content{}, err
		}
		blocks := make([]Block, 0, len(items))
		for i, item := range items {
			block, err := parseBlock(item)
			if err != nil {
				return Content{}, structural(-1, "content block %d: %v", i, err)
			}
			blocks = append(blocks, block)
		}
		return Content{Kind: ContentBlocks, Blocks: blocks}, nil
	default:
		return Content{}, structural(-1, "content must be a string, an array of blocks or null")
	}
}

func parseBlock(raw json.RawMessage) (Block, error) {
	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return Block{}, errNotObject
	}
	block := Block{Type: missingBlockType, Raw: raw}
	if typ := res.Get("type"); typ.Type == gjson.String {
		block.Type = typ.String()
	}
	block.Kind = blockKindOf(block.Type)
	if block.Kind == BlockText {
		switch text := res.Get("text"); text.Type {
		case gjson.String:
			block.Text = text.String()
		case gjson.Null:
		default:
			return Block{}, errTextNotString
		}
	}
	return block, nil
}
