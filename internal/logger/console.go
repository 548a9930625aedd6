package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

// 颜色模式取值，对应配置项 color。
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// consoleRenderer 固定使用 ANSI 配色；是否着色由 ConsoleFormatter.Color 决定。
var consoleRenderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}()

var levelStyles = map[logrus.Level]lipgloss.Style{
	logrus.PanicLevel: consoleRenderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	logrus.FatalLevel: consoleRenderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	logrus.ErrorLevel: consoleRenderer.NewStyle().Foreground(lipgloss.Color("1")),
	logrus.WarnLevel:  consoleRenderer.NewStyle().Foreground(lipgloss.Color("3")),
	logrus.InfoLevel:  consoleRenderer.NewStyle().Faint(true),
}

// ConsoleFormatter 面向终端的诊断格式：[LEVEL] message fields，每条日志一行。
type ConsoleFormatter struct {
	Color bool
}

// Format 实现 logrus Formatter。
func (f ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}
	tag := "[" + strings.ToUpper(entry.Level.String()) + "]"
	if f.Color {
		if style, ok := levelStyles[entry.Level]; ok {
			tag = style.Render(tag)
		}
	}
	parts := []string{tag, entry.Message}
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// ShouldColor 根据颜色模式与输出目标决定是否着色。
// auto 模式下尊重 NO_COLOR，并且只对终端着色。
func ShouldColor(mode string, out *os.File) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if out == nil {
		return false
	}
	fd := out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
