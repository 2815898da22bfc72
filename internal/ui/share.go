package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/dustin/go-humanize"
)

// ShareSummary renders the boxed summary displayed after a share creation.
func ShareSummary(share *model.Share, now time.Time) string {
	lines := []string{
		successStyle.Render("✓") + " Share URL: " + linkStyle.Render(share.URL),
		Bullet("Expires", model.FormatExpiry(share.ExpiresAt, now)),
		Bullet("Share ID", string(share.ID)),
	}

	if share.Password {
		lines = append(lines, Bullet("Password protected", warningStyle.Render("Yes")))
	}

	if share.BurnAfterReading {
		lines = append(lines, Bullet("Burn after reading", failureStyle.Render("Yes")))
	}

	if share.Reference != "" {
		lines = append(lines, Bullet("Reference", share.Reference))
	}

	if share.Usage != nil {
		lines = append(lines, Bullet("Usage", FormatUsage(share.Usage)))
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func FormatUsage(usage *model.Usage) string {
	return fmt.Sprintf("%s/%s", humanize.Comma(usage.Current), humanize.Comma(usage.Limit))
}

// ShareList renders one line per share, each truncated to width.
func ShareList(shares []model.Share, now time.Time, width int) string {
	if len(shares) == 0 {
		return Note("No active shares")
	}

	var sb strings.Builder

	for _, s := range shares {
		flags := make([]string, 0, 3)
		if s.Password {
			flags = append(flags, "password")
		}
		if s.BurnAfterReading {
			flags = append(flags, "burn")
		}
		if s.Reference != "" {
			flags = append(flags, "ref:"+s.Reference)
		}

		line := fmt.Sprintf("%s  %s  %s", s.ID, s.URL, model.FormatExpiry(s.ExpiresAt, now))
		if len(flags) > 0 {
			line += "  [" + strings.Join(flags, ", ") + "]"
		}

		sb.WriteString(model.TruncateText(line, width))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// UpdateNotice tells the user a newer release of the client is available.
func UpdateNotice(current string, release *model.Release) string {
	lines := []string{
		warningStyle.Render(fmt.Sprintf("Update available %s → %s", current, release.Version)),
	}

	if release.URL != "" {
		lines = append(lines, Note("Download it from ")+linkStyle.Render(release.URL))
	}

	return noticeStyle.Render(strings.Join(lines, "\n"))
}
