package store

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/sir/pkg/types"
)

// storageJSON mirrors storage.json. The field names and the gap tier
// vocabulary are the on-disk format; files written by earlier releases use
// the same keys.
type storageJSON struct {
	ReviewTopicList []topicJSON `json:"review_topic_list"`
}

// topicJSON represents one entry of review_topic_list.
type topicJSON struct {
	TopicName     string        `json:"topic_name"`
	LastReviewed  string        `json:"last_reviewed"`
	NextReviewGap *types.GapTier `json:"next_review_gap"`
}

// timeFormat keeps the zone offset and full precision.
const timeFormat = time.RFC3339Nano

func toTopicJSON(t types.ReviewTopic) topicJSON {
	return topicJSON{
		TopicName:     t.Name,
		LastReviewed:  t.LastReviewed.Format(timeFormat),
		NextReviewGap: &t.GapTier,
	}
}

func toStorageJSON(c *types.Collection) storageJSON {
	topics := c.All()
	out := storageJSON{ReviewTopicList: make([]topicJSON, 0, len(topics))}
	for _, t := range topics {
		out.ReviewTopicList = append(out.ReviewTopicList, toTopicJSON(t))
	}
	return out
}

// parseTopicJSON converts one review_topic_list entry back into a topic.
// Every field is required.
func parseTopicJSON(rec topicJSON) (types.ReviewTopic, error) {
	if rec.NextReviewGap == nil {
		return types.ReviewTopic{}, fmt.Errorf("%w: topic %q: missing next_review_gap", types.ErrCorruptStorage, rec.TopicName)
	}
	return parseTopic(rec.TopicName, rec.LastReviewed, *rec.NextReviewGap)
}

// parseTopic converts stored fields back into a topic. Timestamps are
// returned in the local zone.
func parseTopic(name, lastReviewed string, tier types.GapTier) (types.ReviewTopic, error) {
	ts, err := time.Parse(timeFormat, lastReviewed)
	if err != nil {
		return types.ReviewTopic{}, fmt.Errorf("%w: topic %q: last_reviewed: %w", types.ErrCorruptStorage, name, err)
	}
	return types.ReviewTopic{
		Name:         name,
		LastReviewed: ts.Local(),
		GapTier:      tier,
	}, nil
}

// buildCollection wraps collection invariant violations as corruption.
func buildCollection(topics []types.ReviewTopic) (*types.Collection, error) {
	c, err := types.NewCollection(topics)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrCorruptStorage, err)
	}
	return c, nil
}
