package pool

import (
	"encoding/json"

	"github.com/prepdrill/prepdrill/internal/difficulty"
	"github.com/prepdrill/prepdrill/internal/profile"
)

// Item is one question in the pool. The payload (prompt, options,
// explanations) is opaque to the engine; only the identifiers, tags, and
// the correct option index are interpreted.
type Item struct {
	ID          string           `json:"id"`
	TopicID     profile.TopicID  `json:"topic_id"`
	Difficulty  difficulty.Level `json:"difficulty"`
	ConceptTags []string         `json:"concept_tags,omitempty"`
	Answer      int              `json:"answer"`
	Payload     json.RawMessage  `json:"payload,omitempty"`
}

// ByID indexes a pool slice by item ID.
func ByID(items []Item) map[string]Item {
	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}

// FilterTopics returns the items whose topic is in topics. An empty
// topic list means no filtering.
func FilterTopics(items []Item, topics []profile.TopicID) []Item {
	if len(topics) == 0 {
		return items
	}
	want := make(map[profile.TopicID]bool, len(topics))
	for _, t := range topics {
		want[t] = true
	}
	var out []Item
	for _, it := range items {
		if want[it.TopicID] {
			out = append(out, it)
		}
	}
	return out
}
