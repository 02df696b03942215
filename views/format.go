package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rpupo63/ai-portfolio-site/models"
)

const (
	excerptLength = 150
	visibleTags   = 3
	dateLayout    = "January 2, 2006"
)

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatViews abbreviates counts: 950, 1.2K, 3.4M.
func FormatViews(views int64) string {
	switch {
	case views >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(views)/1_000_000)
	case views >= 1_000:
		return fmt.Sprintf("%.1fK", float64(views)/1_000)
	default:
		return strconv.FormatInt(views, 10)
	}
}

// Excerpt prefers the stored excerpt, falling back to the first 150 characters of content.
// The ellipsis is only added when the content was actually cut.
func Excerpt(note models.Note) string {
	if note.Excerpt != nil && strings.TrimSpace(*note.Excerpt) != "" {
		return *note.Excerpt
	}
	runes := []rune(note.Content)
	if len(runes) <= excerptLength {
		return note.Content
	}
	return string(runes[:excerptLength]) + "..."
}

// SplitTags returns the tags to show and how many were left out.
func SplitTags(tags []string, limit int) ([]string, int) {
	if len(tags) <= limit {
		return tags, 0
	}
	return tags[:limit], len(tags) - limit
}
