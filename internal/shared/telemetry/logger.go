// Package telemetry emits JSON log lines to stdout. One line per event,
// fields flattened alongside ts/level/msg.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

var out io.Writer = os.Stdout

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	out = w
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	emit("info", msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	emit("warn", msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	emit("error", msg, fields)
}

func emit(level, msg string, fields map[string]any) {
	line := make(map[string]any, len(fields)+3)
	line["ts"] = time.Now().UTC().Format(time.RFC3339)
	line["level"] = level
	line["msg"] = msg
	for k, v := range fields {
		line[k] = v
	}

	data, err := json.Marshal(line)
	if err != nil {
		// Field values that cannot marshal should not silence the event.
		fmt.Fprintf(out, `{"ts":"%s","level":"error","msg":"telemetry marshal failed","err":%q}`+"\n",
			time.Now().UTC().Format(time.RFC3339), err.Error())
		return
	}
	fmt.Fprintln(out, string(data))
}
