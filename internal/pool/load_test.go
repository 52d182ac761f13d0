package pool

import (
	"strings"
	"testing"

	"github.com/prepdrill/prepdrill/internal/profile"
)

const validPool = `[
  {"id": "q1", "topic_id": "fundamentals", "difficulty": "easy", "answer": 0,
   "payload": {"question": "What is X?", "options": ["a", "b", "c", "d"]}},
  {"id": "q2", "topic_id": "operations", "difficulty": "hard", "answer": 2,
   "concept_tags": ["monitoring"]}
]`

func TestLoad_Valid(t *testing.T) {
	items, err := Load(strings.NewReader(validPool), profile.Default())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Load returned %d items, want 2", len(items))
	}
	if items[0].ID != "q1" || items[0].TopicID != "fundamentals" || items[0].Answer != 0 {
		t.Errorf("item 0 decoded wrong: %+v", items[0])
	}
	if items[1].Difficulty != "hard" || len(items[1].ConceptTags) != 1 {
		t.Errorf("item 1 decoded wrong: %+v", items[1])
	}
	if len(items[0].Payload) == 0 {
		t.Error("payload should be carried through opaquely")
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not JSON", `{`},
		{"not an array", `{"id": "q1"}`},
		{"missing required field", `[{"id": "q1", "topic_id": "fundamentals", "answer": 0}]`},
		{"bad difficulty", `[{"id": "q1", "topic_id": "fundamentals", "difficulty": "expert", "answer": 0}]`},
		{"negative answer index", `[{"id": "q1", "topic_id": "fundamentals", "difficulty": "easy", "answer": -1}]`},
		{"unknown extra field", `[{"id": "q1", "topic_id": "fundamentals", "difficulty": "easy", "answer": 0, "hint": "x"}]`},
		{"duplicate IDs", `[
			{"id": "q1", "topic_id": "fundamentals", "difficulty": "easy", "answer": 0},
			{"id": "q1", "topic_id": "planning", "difficulty": "easy", "answer": 0}
		]`},
		{"unknown topic", `[{"id": "q1", "topic_id": "networking", "difficulty": "easy", "answer": 0}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.in), profile.Default()); err == nil {
				t.Error("Load should have rejected the pool")
			}
		})
	}
}

func TestFilterTopics(t *testing.T) {
	items := []Item{
		{ID: "a", TopicID: "fundamentals"},
		{ID: "b", TopicID: "planning"},
		{ID: "c", TopicID: "fundamentals"},
	}

	got := FilterTopics(items, []profile.TopicID{"fundamentals"})
	if len(got) != 2 {
		t.Fatalf("FilterTopics returned %d items, want 2", len(got))
	}

	if got := FilterTopics(items, nil); len(got) != 3 {
		t.Errorf("empty filter should pass everything, got %d", len(got))
	}
}
