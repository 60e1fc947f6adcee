package logging

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

// TextFormatter is a compact logrus formatter: level, component, message,
// then any remaining fields. No timestamps; prompt diagnostics are read in
// the moment, not archived.
type TextFormatter struct {
	// Color highlights the component name when stderr is a terminal.
	Color bool
}

// Format renders a single log entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	levelStr := entry.Level.String()
	if levelStr == "warning" {
		levelStr = "warn"
	}
	b.WriteString(fmt.Sprintf("[%s]", strings.ToUpper(levelStr)))

	if component, ok := entry.Data["component"]; ok {
		componentStr := fmt.Sprintf("%v", component)
		if f.Color {
			componentStr = termenv.ANSI256.String(componentStr).
				Foreground(termenv.ANSI256.Color("6")).String()
		}
		b.WriteString(fmt.Sprintf(" [%s]", componentStr))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	for key, value := range entry.Data {
		if key != "component" {
			b.WriteString(fmt.Sprintf(" %s=%v", key, value))
		}
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
