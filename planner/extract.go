package planner

import (
	"encoding/json"
	"regexp"
	"strings"

	"wayfarer/models"
)

// metadataKey marks a JSON object as the structured payload when scanning
// loose text.
const metadataKey = "routeEntries"

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ParsePlanResponse turns a raw generation into narrative plus optional
// structured metadata. Order of attempts:
//
//  1. the whole body is the {narrativeText, metadata} envelope
//  2. a fenced ```json``` block inside the narrative
//  3. best-effort scan for a brace-balanced {...} run containing the
//     routeEntries key (covers truncated fences)
//
// When nothing parses, the whole text is narrative with no entries; a
// malformed payload never fails the request.
func ParsePlanResponse(raw string) models.PlanResult {
	var envelope struct {
		NarrativeText string           `json:"narrativeText"`
		Metadata      *models.PlanMeta `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil && envelope.NarrativeText != "" {
		return models.PlanResult{Narrative: envelope.NarrativeText, Meta: envelope.Metadata}
	}

	if m := fencedBlock.FindStringSubmatch(raw); m != nil {
		if meta := decodeMeta(m[1]); meta != nil {
			narrative := strings.TrimSpace(strings.Replace(raw, m[0], "", 1))
			return models.PlanResult{Narrative: narrative, Meta: meta}
		}
	}

	if obj := scanObjectWithKey(raw, metadataKey); obj != "" {
		if meta := decodeMeta(obj); meta != nil {
			narrative := strings.TrimSpace(strings.Replace(raw, obj, "", 1))
			return models.PlanResult{Narrative: narrative, Meta: meta}
		}
	}

	return models.PlanResult{Narrative: strings.TrimSpace(raw)}
}

func decodeMeta(s string) *models.PlanMeta {
	// payloads arrive either bare or wrapped in a metadata field
	var wrapped struct {
		Metadata *models.PlanMeta `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(s), &wrapped); err == nil && wrapped.Metadata != nil {
		return wrapped.Metadata
	}

	var meta models.PlanMeta
	if err := json.Unmarshal([]byte(s), &meta); err != nil {
		return nil
	}
	if meta.TotalBudgetEstimate == "" && len(meta.Tags) == 0 && len(meta.RouteEntries) == 0 {
		return nil
	}
	return &meta
}

// scanObjectWithKey finds the smallest brace-balanced object around the
// key. Candidate opening braces are tried nearest-first so an enclosing
// prose "{" doesn't swallow the payload.
func scanObjectWithKey(text, key string) string {
	at := strings.Index(text, `"`+key+`"`)
	if at < 0 {
		return ""
	}

	for open := strings.LastIndex(text[:at], "{"); open >= 0; open = strings.LastIndex(text[:open], "{") {
		obj, ok := balancedObject(text[open:])
		if ok && strings.Contains(obj, `"`+key+`"`) {
			return obj
		}
	}
	return ""
}

func balancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
