package coach

import (
	"strings"
)

// ExtractJSON pulls a JSON object out of model output. A ```json fence wins,
// then any ``` fence holding an object, then the outermost {...} span.
func ExtractJSON(text string) (string, bool) {
	if body, ok := fenced(text, "```json"); ok {
		return body, true
	}
	if body, ok := fenced(text, "```"); ok && strings.HasPrefix(body, "{") {
		return body, true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func fenced(text, opener string) (string, bool) {
	i := strings.Index(text, opener)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(opener):]

	// drop a language tag on the opening line, e.g. ```JSON or ```javascript
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 && !strings.ContainsAny(rest[:nl], "{[") {
		rest = rest[nl+1:]
	}

	j := strings.Index(rest, "```")
	if j < 0 {
		return "", false
	}
	body := strings.TrimSpace(rest[:j])
	return body, body != ""
}
