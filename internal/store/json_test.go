package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sir/pkg/types"
)

func TestJSONStoreFileFormat(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(dir)

	reviewed := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.FixedZone("", 2*60*60))
	c, err := types.NewCollection([]types.ReviewTopic{
		{Name: "algebra", LastReviewed: reviewed, GapTier: types.GapWeek},
	})
	require.NoError(t, err)
	require.NoError(t, s.Save(c))

	data, err := os.ReadFile(filepath.Join(dir, "storage.json"))
	require.NoError(t, err)

	// The timestamp is written as stored on the topic: RFC 3339 with offset.
	assert.JSONEq(t, `{
		"review_topic_list": [
			{"topic_name": "algebra", "last_reviewed": "2024-05-01T09:30:00+02:00", "next_review_gap": "Week"}
		]
	}`, string(data))
	assert.Contains(t, string(data), "\n  \"review_topic_list\"", "file is indented")
}

func TestJSONStoreReadsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	legacy := `{
  "review_topic_list": [
    {
      "topic_name": "Linear Algebra",
      "last_reviewed": "2023-04-18T21:15:02.918273645+02:00",
      "next_review_gap": "Month"
    },
    {
      "topic_name": "Rust lifetimes",
      "last_reviewed": "2023-04-20T08:00:00-05:00",
      "next_review_gap": "Day"
    }
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storage.json"), []byte(legacy), 0o644))

	c, err := NewJSONStore(dir).Load()
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	topic, ok := c.Find("Linear Algebra")
	require.True(t, ok)
	assert.Equal(t, types.GapMonth, topic.GapTier)
	want := time.Date(2023, time.April, 18, 19, 15, 2, 918273645, time.UTC)
	assert.True(t, want.Equal(topic.LastReviewed), "got %s", topic.LastReviewed)
}

func TestJSONStoreCorruptState(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{not json"},
		{name: "unknown gap", content: `{"review_topic_list":[{"topic_name":"a","last_reviewed":"2024-05-01T09:30:00Z","next_review_gap":"Year"}]}`},
		{name: "bad timestamp", content: `{"review_topic_list":[{"topic_name":"a","last_reviewed":"yesterday","next_review_gap":"Day"}]}`},
		{name: "missing gap", content: `{"review_topic_list":[{"topic_name":"a","last_reviewed":"2024-05-01T09:30:00Z"}]}`},
		{name: "null gap", content: `{"review_topic_list":[{"topic_name":"a","last_reviewed":"2024-05-01T09:30:00Z","next_review_gap":null}]}`},
		{name: "missing timestamp", content: `{"review_topic_list":[{"topic_name":"a","next_review_gap":"Day"}]}`},
		{name: "missing name", content: `{"review_topic_list":[{"last_reviewed":"2024-05-01T09:30:00Z","next_review_gap":"Day"}]}`},
		{name: "empty name", content: `{"review_topic_list":[{"topic_name":"","last_reviewed":"2024-05-01T09:30:00Z","next_review_gap":"Day"}]}`},
		{
			name: "duplicate name",
			content: `{"review_topic_list":[
				{"topic_name":"a","last_reviewed":"2024-05-01T09:30:00Z","next_review_gap":"Day"},
				{"topic_name":"a","last_reviewed":"2024-05-02T09:30:00Z","next_review_gap":"Week"}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "storage.json"), []byte(tt.content), 0o644))

			_, err := NewJSONStore(dir).Load()
			assert.ErrorIs(t, err, types.ErrCorruptStorage)
		})
	}
}

func TestJSONStoreEmptyListOnDisk(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(dir)
	require.NoError(t, s.Save(&types.Collection{}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var stored map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.JSONEq(t, `[]`, string(stored["review_topic_list"]), "an empty list, not null")
}

func TestJSONStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deeper")
	s := NewJSONStore(dir)

	require.NoError(t, s.Save(&types.Collection{}))
	assert.DirExists(t, dir)
	assert.FileExists(t, s.Path())
}

func TestJSONStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(dir)

	c, err := types.NewCollection(sampleTopics(2))
	require.NoError(t, err)
	require.NoError(t, s.Save(c))
	require.NoError(t, s.Save(c))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "storage.json", entries[0].Name())
}

func TestJSONStoreSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The data dir path runs through a regular file, so it cannot be created.
	s := NewJSONStore(filepath.Join(blocker, "data"))
	err := s.Save(&types.Collection{})
	assert.Error(t, err)
}
