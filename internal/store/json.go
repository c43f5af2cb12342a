package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/sir/pkg/types"
)

// JSONStore keeps the collection in <dataDir>/storage.json.
type JSONStore struct {
	dataDir string
}

// NewJSONStore returns a store rooted at dataDir. Nothing is touched on disk
// until Load or Save is called.
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{dataDir: dataDir}
}

// Path returns the location of storage.json.
func (s *JSONStore) Path() string {
	return filepath.Join(s.dataDir, jsonFileName)
}

// Load reads storage.json. A missing file yields an empty collection.
func (s *JSONStore) Load() (*types.Collection, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return &types.Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path(), err)
	}

	var stored storageJSON
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrCorruptStorage, s.Path(), err)
	}

	topics := make([]types.ReviewTopic, 0, len(stored.ReviewTopicList))
	for _, rec := range stored.ReviewTopicList {
		topic, err := parseTopicJSON(rec)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return buildCollection(topics)
}

// Save writes the collection to storage.json, creating the data directory
// if needed.
func (s *JSONStore) Save(c *types.Collection) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(toStorageJSON(c), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding review topics: %w", err)
	}

	if err := writeFileAtomic(s.Path(), data); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path(), err)
	}
	return nil
}
