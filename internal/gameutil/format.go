package gameutil

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatTime renders seconds as M:SS. Minutes are not capped at 59.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatScore inserts a comma between every group of three digits.
func FormatScore(score int) string {
	return humanize.Comma(int64(score))
}

// FormatScoreLocale groups digits the way tag's locale does.
func FormatScoreLocale(tag language.Tag, score int) string {
	return message.NewPrinter(tag).Sprintf("%d", score)
}
