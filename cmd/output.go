package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// OutputConfig controls formatting behavior
type OutputConfig struct {
	Colors bool
	Emoji  bool
}

// Writer renders messages to one stream and remembers the first write error,
// so call chains can be checked once with Err.
type Writer struct {
	out    io.Writer
	config OutputConfig
	err    error
}

func NewWriter(out io.Writer, config OutputConfig) *Writer {
	return &Writer{out: out, config: config}
}

// Message is a piece of text with optional emoji prefix and styling.
type Message struct {
	Text  string
	Color string
	Emoji string
	Bold  bool
}

const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"

	// indent prefixes entries listed under a heading
	indent = "   "
)

// ANSI color codes
const (
	ColorRed          = "\033[31m"
	ColorYellow       = "\033[33m"
	ColorCyan         = "\033[36m"
	ColorGray         = "\033[90m"
	ColorBrightGreen  = "\033[1;32m"
	ColorBrightYellow = "\033[1;33m"
)

func (w *Writer) render(msg Message) string {
	var b strings.Builder
	if w.config.Emoji && msg.Emoji != "" {
		b.WriteString(msg.Emoji)
		b.WriteByte(' ')
	}
	styled := w.config.Colors && (msg.Bold || msg.Color != "")
	if styled {
		if msg.Bold {
			b.WriteString(ansiBold)
		}
		b.WriteString(msg.Color)
	}
	b.WriteString(msg.Text)
	if styled {
		b.WriteString(ansiReset)
	}
	return b.String()
}

func (w *Writer) print(s string) *Writer {
	if w.err == nil {
		_, w.err = io.WriteString(w.out, s)
	}
	return w
}

func (w *Writer) Write(msg Message) *Writer {
	return w.print(w.render(msg))
}

func (w *Writer) Writeln(msg Message) *Writer {
	return w.print(w.render(msg) + "\n")
}

// WriteString outputs text without styling.
func (w *Writer) WriteString(text string) *Writer {
	return w.print(text)
}

func (w *Writer) WritelnString(text string) *Writer {
	return w.print(text + "\n")
}

// Item writes one indented line made of msgs separated by spaces.
func (w *Writer) Item(msgs ...Message) *Writer {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, w.render(m))
	}
	return w.print(indent + strings.Join(parts, " ") + "\n")
}

// Err returns the first error encountered during writing
func (w *Writer) Err() error {
	return w.err
}

func Success(text string) Message {
	return Message{Text: text, Color: ColorBrightGreen, Emoji: "✅", Bold: true}
}

func Error(text string) Message {
	return Message{Text: text, Color: ColorRed, Emoji: "❌"}
}

func Warning(text string) Message {
	return Message{Text: text, Color: ColorBrightYellow, Emoji: "⚠️", Bold: true}
}

func Info(text string) Message {
	return Message{Text: text, Color: ColorYellow, Emoji: "💡"}
}

func Heading(text string) Message {
	return Message{Text: text, Emoji: "📋", Bold: true}
}

func Link(text string) Message {
	return Message{Text: text, Color: ColorCyan, Emoji: "🔗"}
}

// LinkTo renders "path → target".
func LinkTo(path, target string) Message {
	return Link(path + " → " + target)
}

// Broken marks a link whose target no longer exists.
func Broken() Message {
	return Message{Text: "(broken)", Color: ColorGray}
}

func Removed(text string) Message {
	return Message{Text: text, Emoji: "🗑️"}
}

func Bold(text string) Message {
	return Message{Text: text, Bold: true}
}

func Colored(text, color string) Message {
	return Message{Text: text, Color: color}
}

// Values accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	globalConfig = OutputConfig{Emoji: true}
	configured   bool
)

// SetGlobalConfig fixes the styling used by GetWriter and GetErrorWriter.
// An explicit "always" wins over NO_COLOR.
func SetGlobalConfig(colorMode string, emoji bool) error {
	colors, err := resolveColors(colorMode)
	if err != nil {
		return err
	}
	globalConfig = OutputConfig{Colors: colors, Emoji: emoji}
	configured = true
	return nil
}

func resolveColors(mode string) (bool, error) {
	switch mode {
	case ColorAuto:
		return os.Getenv("NO_COLOR") == "" && isTerminal(os.Stdout), nil
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode: %s (valid: %s, %s, %s)", mode, ColorAuto, ColorAlways, ColorNever)
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func currentConfig() OutputConfig {
	if !configured {
		globalConfig.Colors, _ = resolveColors(ColorAuto)
		configured = true
	}
	return globalConfig
}

// GetWriter returns a writer for the command's stdout
func GetWriter(cmd *cobra.Command) *Writer {
	return NewWriter(cmd.OutOrStdout(), currentConfig())
}

// GetErrorWriter returns a writer for the command's stderr
func GetErrorWriter(cmd *cobra.Command) *Writer {
	return NewWriter(cmd.ErrOrStderr(), currentConfig())
}

// plural returns "1 link" / "2 links"
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
