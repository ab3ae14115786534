package mentor

import (
	"strings"
	"unicode/utf8"

	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

// variationSelector often trails emoji markers in model output ("❓️").
const variationSelector = "\uFE0F"

// ParsePlan splits a raw model response into plan sections. It never fails:
// missing sections fall back to placeholder text, and the input is kept
// unchanged in RawResponse.
func ParsePlan(raw string) models.MentorshipPlan {
	fragments := splitAtMarkers(raw)

	plan := models.MentorshipPlan{RawResponse: raw}
	for _, key := range models.SectionKeys {
		plan.SetSection(key, sectionBody(fragments, key))
	}
	return plan
}

// splitAtMarkers cuts text immediately before every recognized marker. The
// marker stays at the start of the fragment that follows it; text before the
// first marker forms its own fragment.
func splitAtMarkers(text string) []string {
	var cuts []int
	for i := 0; i < len(text); {
		if markerAt(text, i) {
			cuts = append(cuts, i)
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}

	if len(cuts) == 0 {
		return []string{text}
	}

	fragments := make([]string, 0, len(cuts)+1)
	fragments = append(fragments, text[:cuts[0]])
	for j, start := range cuts {
		end := len(text)
		if j+1 < len(cuts) {
			end = cuts[j+1]
		}
		fragments = append(fragments, text[start:end])
	}
	return fragments
}

func markerAt(text string, i int) bool {
	for _, key := range models.SectionKeys {
		if strings.HasPrefix(text[i:], key.Marker()) {
			return true
		}
	}
	return false
}

// sectionBody returns the body of the first fragment introduced by key's
// marker, or the key's fallback when there is none or it is empty.
func sectionBody(fragments []string, key models.SectionKey) string {
	marker := key.Marker()
	for _, frag := range fragments {
		trimmed := strings.TrimSpace(frag)
		if !strings.HasPrefix(trimmed, marker) {
			continue
		}
		body := strings.TrimPrefix(trimmed, marker)
		body = strings.TrimPrefix(body, variationSelector)
		body = strings.TrimSpace(body)
		if body == "" {
			return key.Fallback()
		}
		return body
	}
	return key.Fallback()
}
