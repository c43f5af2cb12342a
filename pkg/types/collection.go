package types

import (
	"fmt"
	"slices"
	"time"
)

// Collection is an ordered set of review topics, unique by name. After every
// mutation the topics are kept in urgency order (see CompareTopics), so the
// stored order already reflects what is due first.
//
// The zero value is an empty collection that reads the wall clock.
type Collection struct {
	topics []ReviewTopic
	clock  func() time.Time
}

// NewCollection builds a collection from previously stored topics.
// Returns ErrInvalidName or ErrDuplicateName if the input breaks the
// collection invariants.
func NewCollection(topics []ReviewTopic) (*Collection, error) {
	c := &Collection{topics: make([]ReviewTopic, 0, len(topics))}
	for _, t := range topics {
		if err := validateTopic(t); err != nil {
			return nil, err
		}
		if c.index(t.Name) >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, t.Name)
		}
		c.topics = append(c.topics, t)
	}
	c.sort()
	return c, nil
}

// SetClock replaces the time source used for ordering and due checks.
func (c *Collection) SetClock(clock func() time.Time) {
	c.clock = clock
	c.sort()
}

// Now returns the current time according to the collection's clock.
func (c *Collection) Now() time.Time {
	if c.clock == nil {
		return time.Now()
	}
	return c.clock()
}

// Len returns the number of topics.
func (c *Collection) Len() int {
	return len(c.topics)
}

// Add inserts topic unless a topic with the same name already exists.
// A duplicate is silently ignored; the bool reports whether the topic was
// inserted. A topic with an empty name or an unknown gap tier is refused
// with ErrInvalidName or ErrInvalidGapTier.
func (c *Collection) Add(topic ReviewTopic) (bool, error) {
	if err := validateTopic(topic); err != nil {
		return false, err
	}
	if c.index(topic.Name) >= 0 {
		return false, nil
	}
	c.topics = append(c.topics, topic)
	c.sort()
	return true, nil
}

// Remove deletes the topic with the given name. Returns false if absent.
func (c *Collection) Remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.topics = slices.Delete(c.topics, i, i+1)
	return true
}

// Find returns a copy of the topic with the given name.
func (c *Collection) Find(name string) (ReviewTopic, bool) {
	i := c.index(name)
	if i < 0 {
		return ReviewTopic{}, false
	}
	return c.topics[i], true
}

// Update applies fn to the topic with the given name and reinserts it in
// urgency order. This is the only way to change a stored topic.
// Returns ErrNotFound if name is absent. If fn leaves the topic with an
// empty name or a name taken by another topic, the collection is not
// modified and ErrInvalidName or ErrDuplicateName is returned. An unknown
// gap tier is refused with ErrInvalidGapTier.
func (c *Collection) Update(name string, fn func(*ReviewTopic)) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	updated := c.topics[i]
	fn(&updated)

	if err := validateTopic(updated); err != nil {
		return err
	}
	if updated.Name != name && c.index(updated.Name) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateName, updated.Name)
	}

	c.topics[i] = updated
	c.sort()
	return nil
}

// Rename changes a topic's name. Unlike a silent duplicate add, renaming onto
// an existing name is refused with ErrDuplicateName.
func (c *Collection) Rename(oldName, newName string) error {
	return c.Update(oldName, func(t *ReviewTopic) {
		t.Name = newName
	})
}

// Review marks the named topic as reviewed now and escalates its gap tier.
func (c *Collection) Review(name string) error {
	now := c.Now()
	return c.Update(name, func(t *ReviewTopic) {
		t.Review(now)
	})
}

// All returns a copy of every topic in urgency order.
func (c *Collection) All() []ReviewTopic {
	return slices.Clone(c.topics)
}

// Due returns the topics that are due for review, in urgency order.
func (c *Collection) Due() []ReviewTopic {
	now := c.Now()
	var due []ReviewTopic
	for _, t := range c.topics {
		if t.IsTimeToReview(now) {
			due = append(due, t)
		}
	}
	return due
}

// validateTopic checks the per-topic invariants every stored topic holds.
func validateTopic(t ReviewTopic) error {
	if err := ValidateName(t.Name); err != nil {
		return err
	}
	if !t.GapTier.Valid() {
		return fmt.Errorf("%w: topic %q", ErrInvalidGapTier, t.Name)
	}
	return nil
}

func (c *Collection) index(name string) int {
	return slices.IndexFunc(c.topics, func(t ReviewTopic) bool {
		return t.Name == name
	})
}

// sort restores urgency order. A single timestamp is used for the whole
// pass so the comparison stays consistent across a midnight boundary.
func (c *Collection) sort() {
	now := c.Now()
	slices.SortStableFunc(c.topics, func(a, b ReviewTopic) int {
		return CompareTopics(a, b, now)
	})
}
