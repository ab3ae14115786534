package mentor

import (
	"strings"

	"github.com/BerylCAtieno/edupath-mentor/internal/models"
)

// RenderText lays a plan out as plain text, one titled block per non-empty
// section in display order.
func RenderText(plan models.MentorshipPlan) string {
	var b strings.Builder
	for _, k := range models.SectionKeys {
		content := plan.Section(k)
		if content == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(k.Marker() + " " + k.Title() + "\n")
		b.WriteString(content)
	}
	return b.String()
}
