package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/sir/pkg/types"
)

// topicRow is the JSON form of a displayed topic.
type topicRow struct {
	Name            string    `json:"topic_name"`
	LastReviewed    time.Time `json:"last_reviewed"`
	ReviewGap       string    `json:"next_review_gap"`
	DaysSinceReview int       `json:"days_since_review"`
	DaysUntilReview int       `json:"days_until_review"`
	NextReview      string    `json:"next_review"`
}

func toRows(topics []types.ReviewTopic, now time.Time) []topicRow {
	rows := make([]topicRow, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, topicRow{
			Name:            t.Name,
			LastReviewed:    t.LastReviewed,
			ReviewGap:       t.GapTier.String(),
			DaysSinceReview: t.DaysSinceReview(now),
			DaysUntilReview: t.DaysUntilReview(now),
			NextReview:      t.NextReviewLabel(now),
		})
	}
	return rows
}

func renderJSON(w io.Writer, topics []types.ReviewTopic, now time.Time) error {
	out, err := json.MarshalIndent(toRows(topics, now), "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal topics: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// renderToday prints the topics due today with the days since each was
// last reviewed.
func renderToday(w io.Writer, due []types.ReviewTopic, now time.Time, jsonMode bool) error {
	if jsonMode {
		return renderJSON(w, due, now)
	}
	if len(due) == 0 {
		fmt.Fprintln(w, "No review topics for today.")
		return nil
	}

	header := []string{"TOPIC", "DAYS SINCE REVIEW", "REVIEW GAP"}
	rows := make([][]string, 0, len(due))
	for _, t := range due {
		rows = append(rows, []string{t.Name, fmt.Sprint(t.DaysSinceReview(now)), t.GapTier.String()})
	}
	printTable(w, header, rows)
	return nil
}

// renderAll prints every topic with the time until its next review.
func renderAll(w io.Writer, topics []types.ReviewTopic, now time.Time, jsonMode bool) error {
	if jsonMode {
		return renderJSON(w, topics, now)
	}
	if len(topics) == 0 {
		fmt.Fprintln(w, "No review topics.")
		return nil
	}

	header := []string{"TOPIC", "NEXT REVIEW", "REVIEW GAP"}
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []string{t.Name, t.NextReviewLabel(now), t.GapTier.String()})
	}
	printTable(w, header, rows)
	fmt.Fprintf(w, "Total: %d topic(s)\n", len(topics))
	return nil
}

// printTable aligns rows under header with an underline row, trimming the
// padding tabwriter leaves at the end of each line.
func printTable(w io.Writer, header []string, rows [][]string) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	underline := make([]string, len(header))
	for i, h := range header {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(underline, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
