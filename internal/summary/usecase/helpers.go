package usecase

import (
	"regexp"
	"strings"
)

var markdownFenceRe = regexp.MustCompile("```(?:json)?")

// sanitizeJSONResponse strips markdown fences and surrounding chatter and
// carves out the outermost JSON value.
func sanitizeJSONResponse(raw string) string {
	cleaned := markdownFenceRe.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.IndexAny(cleaned, "[{")
	end := strings.LastIndexAny(cleaned, "]}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}
	return strings.TrimSpace(cleaned)
}
