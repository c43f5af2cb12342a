package types

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ReviewTopic is a named item the user wants to revisit periodically.
// The name is the natural key: it is unique within a Collection and compared
// case-sensitively.
type ReviewTopic struct {
	Name         string    // Human-readable name (required, non-empty).
	LastReviewed time.Time // Set at creation and on every review.
	GapTier      GapTier   // Current spacing interval.
}

// NewReviewTopic creates a topic reviewed now at the Day tier.
// Returns ErrInvalidName if name is empty or only whitespace.
func NewReviewTopic(name string) (ReviewTopic, error) {
	return NewReviewTopicAt(name, time.Now())
}

// NewReviewTopicAt is NewReviewTopic with an explicit creation time.
func NewReviewTopicAt(name string, now time.Time) (ReviewTopic, error) {
	if err := ValidateName(name); err != nil {
		return ReviewTopic{}, err
	}
	return ReviewTopic{
		Name:         name,
		LastReviewed: now,
		GapTier:      GapDay,
	}, nil
}

// ValidateName returns ErrInvalidName when name cannot identify a topic.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: topic name must not be empty", ErrInvalidName)
	}
	return nil
}

// Review escalates the gap tier one step and stamps the topic as reviewed
// at now. Month stays Month; only the timestamp moves.
func (t *ReviewTopic) Review(now time.Time) {
	t.GapTier = t.GapTier.Next()
	t.LastReviewed = now
}

// NextReviewDate returns the local calendar date on which the topic becomes
// due, as midnight UTC of that date.
func (t ReviewTopic) NextReviewDate() time.Time {
	return calendarDate(t.LastReviewed).AddDate(0, 0, t.GapTier.Offset())
}

// DaysUntilReview returns the signed number of calendar days from now until
// the topic is due. Zero means due today, negative means overdue.
func (t ReviewTopic) DaysUntilReview(now time.Time) int {
	return daysBetween(calendarDate(now), t.NextReviewDate())
}

// DaysSinceReview returns the number of calendar days since the last review.
// Negative when the recorded review lies in the future.
func (t ReviewTopic) DaysSinceReview(now time.Time) int {
	return daysBetween(calendarDate(t.LastReviewed), calendarDate(now))
}

// IsTimeToReview reports whether the topic is due on now's date or earlier.
func (t ReviewTopic) IsTimeToReview(now time.Time) bool {
	return t.DaysUntilReview(now) <= 0
}

// NextReviewLabel renders the time until the next review for display:
// "Today" when due, otherwise "1 Day" or "N Days".
func (t ReviewTopic) NextReviewLabel(now time.Time) string {
	if t.IsTimeToReview(now) {
		return "Today"
	}
	days := t.DaysUntilReview(now)
	if days == 1 {
		return "1 Day"
	}
	return fmt.Sprintf("%d Days", days)
}

// CompareTopics orders topics by urgency: fewest days until review first,
// ties broken by name.
func CompareTopics(a, b ReviewTopic, now time.Time) int {
	if c := cmp.Compare(a.DaysUntilReview(now), b.DaysUntilReview(now)); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// calendarDate strips the time of day from t in the local zone. The result
// is expressed in UTC so day arithmetic is not disturbed by DST changes.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns to-from in whole days for two calendarDate values.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
