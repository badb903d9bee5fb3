package logger

import (
	"bytes"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to w. Levels are colored, so this is
// meant for terminals and for the HTML log panel, not for files.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// ParseLevel accepts the usual zap level names, case-insensitively.
func ParseLevel(s string) (zapcore.Level, error) {
	return zapcore.ParseLevel(strings.ToLower(s))
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colored aurora.Value
	switch level {
	case zapcore.DebugLevel:
		colored = aurora.Cyan(level.CapitalString())
	case zapcore.InfoLevel:
		colored = aurora.Green(level.CapitalString())
	case zapcore.WarnLevel:
		colored = aurora.Yellow(level.CapitalString())
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		colored = aurora.Red(level.CapitalString())
	default:
		enc.AppendString(level.CapitalString())
		return
	}
	enc.AppendString(colored.String())
}

// Capture is a logger whose output is kept in memory, for showing a request's
// logs next to its result.
type Capture struct {
	Logger *zap.Logger
	buf    *bytes.Buffer
}

func NewCapture(level zapcore.Level) *Capture {
	buf := &bytes.Buffer{}
	return &Capture{
		Logger: New(buf, level),
		buf:    buf,
	}
}

// String returns everything logged so far, ANSI codes included.
func (c *Capture) String() string {
	return c.buf.String()
}

// HTML returns the captured log as a colored <pre> block.
func (c *Capture) HTML() string {
	return ANSIToHTML(c.buf.String())
}

func (c *Capture) Reset() {
	c.buf.Reset()
}

// Pattern to match ANSI SGR sequences, including 256-color ones
var ansiPattern = regexp.MustCompile(`\x1b\[([0-9;]*)m`)

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"35": "magenta",
	"36": "cyan",
	"90": "gray",
}

// ANSIToHTML converts ANSI color codes to HTML spans with inline styles and
// escapes everything else. Unknown codes are dropped.
func ANSIToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	closeSpan := func() {
		if open {
			result.WriteString("</span>")
			open = false
		}
	}

	result.WriteString("<pre>")
	for _, match := range ansiPattern.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(html.EscapeString(input[lastIndex:start]))
		}
		lastIndex = end

		code := input[match[2]:match[3]]
		if color, ok := ansiColor(code); ok {
			closeSpan()
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" || code == "" {
			closeSpan()
		}
	}
	if lastIndex < len(input) {
		result.WriteString(html.EscapeString(input[lastIndex:]))
	}
	closeSpan()
	result.WriteString("</pre>")

	return result.String()
}

func ansiColor(code string) (string, bool) {
	if color, ok := colorMap[code]; ok {
		return color, true
	}
	// 38;5;n, which is how aurora writes its gray scale
	if strings.HasPrefix(code, "38;5;") {
		return "gray", true
	}
	return "", false
}
