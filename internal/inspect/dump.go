// Package inspect prints the shape of an arbitrary JSON document, one line
// per value, for poking at unfamiliar exports.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// PreviewWidth is the display width string previews are shortened to.
const PreviewWidth = 35

var errInvalidJSON = errors.New("invalid JSON")

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Dump writes the structure of data to w in document key order.
func Dump(w io.Writer, data []byte) error {
	if !gjson.ValidBytes(data) {
		return errInvalidJSON
	}
	p := &printer{w: w}
	p.walk(gjson.ParseBytes(data), 0, "")
	return p.err
}

func (p *printer) walk(v gjson.Result, depth int, key string) {
	prefix := ""
	if key != "" {
		prefix = strings.Repeat("  ", depth) + key + ": "
	}
	switch {
	case v.IsObject():
		p.linef("%sobject", prefix)
		v.ForEach(func(k, child gjson.Result) bool {
			p.walk(child, depth+1, k.String())
			return p.err == nil
		})
	case v.IsArray():
		items := v.Array()
		p.linef("%sarray (%d items)", prefix, len(items))
		if len(items) == 0 {
			p.linef("%sempty", strings.Repeat("  ", depth+1))
		}
		for i, item := range items {
			p.walk(item, depth+1, fmt.Sprintf("item[%d]", i))
		}
	case v.Type == gjson.String:
		p.linef("%sstring = %s", prefix, strconv.Quote(Shorten(v.String(), PreviewWidth)))
	case v.Type == gjson.Number:
		p.linef("%s%s = %s", prefix, numberKind(v.Raw), v.Raw)
	case v.Type == gjson.True, v.Type == gjson.False:
		p.linef("%sbool = %t", prefix, v.Bool())
	default:
		p.linef("%snull", prefix)
	}
}

func numberKind(raw string) string {
	if strings.ContainsAny(raw, ".eE") {
		return "float"
	}
	return "int"
}
