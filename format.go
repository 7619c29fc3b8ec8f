// FILE: format.go
package debug

import (
	"encoding/json"
	"strings"
	"time"
)

// Payload is the structured form of a record. It is rendered as the log
// line in JSON mode and is always the body of remote deliveries.
type Payload struct {
	Timestamp string   `json:"timestamp"`
	Level     string   `json:"level"`
	Location  string   `json:"location"`
	Tags      []string `json:"tags"`
	Message   string   `json:"message"`
	Stack     []string `json:"stack"`
}

// render produces the output line for a record and, when JSON mode or
// remote delivery needs it, the structured payload. The payload is built
// independently of the display mode so remote delivery always ships the
// structured form.
func render(s *settings, level Level, msg string, tags []string, site callsite, stack []string, now time.Time) (string, *Payload) {
	ts := now.Format(s.timestampFormat)
	location := site.String()

	var payload *Payload
	if s.jsonOutput || (s.remoteEnabled && s.remoteURL != "") {
		payload = &Payload{
			Timestamp: ts,
			Level:     string(level),
			Location:  location,
			Tags:      tags,
			Message:   msg,
			Stack:     stack,
		}
	}

	if s.jsonOutput {
		// Payload contains no unmarshalable types, Marshal cannot fail here
		doc, _ := json.Marshal(payload)
		return string(doc), payload
	}

	tagStr := ""
	if len(tags) > 0 {
		tagStr = "[" + strings.Join(tags, ",") + "]"
	}

	line := strings.NewReplacer(
		"{time}", ts,
		"{level}", string(level),
		"{location}", location,
		"{tags}", tagStr,
		"{message}", msg,
	).Replace(s.format)

	if s.useColors {
		if color, ok := levelColors[level]; ok {
			line = color + line + ansiReset
		}
	}
	return line, payload
}
