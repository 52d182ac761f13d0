// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepdrill/prepdrill/ent/answerevent"
	"github.com/prepdrill/prepdrill/ent/examevent"
	"github.com/prepdrill/prepdrill/ent/schema"
	"github.com/prepdrill/prepdrill/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescItemID is the schema descriptor for item_id field.
	answereventDescItemID := answereventFields[0].Descriptor()
	// answerevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	answerevent.ItemIDValidator = answereventDescItemID.Validators[0].(func(string) error)
	// answereventDescTopicID is the schema descriptor for topic_id field.
	answereventDescTopicID := answereventFields[1].Descriptor()
	// answerevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	answerevent.TopicIDValidator = answereventDescTopicID.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[3].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescSource is the schema descriptor for source field.
	answereventDescSource := answereventFields[4].Descriptor()
	// answerevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	answerevent.SourceValidator = answereventDescSource.Validators[0].(func(string) error)
	// answereventDescTimeSpentSec is the schema descriptor for time_spent_sec field.
	answereventDescTimeSpentSec := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeSpentSec holds the default value on creation for the time_spent_sec field.
	answerevent.DefaultTimeSpentSec = answereventDescTimeSpentSec.Default.(int)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescSessionID is the schema descriptor for session_id field.
	exameventDescSessionID := exameventFields[0].Descriptor()
	// examevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examevent.SessionIDValidator = exameventDescSessionID.Validators[0].(func(string) error)
	// exameventDescAction is the schema descriptor for action field.
	exameventDescAction := exameventFields[1].Descriptor()
	// examevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	examevent.ActionValidator = exameventDescAction.Validators[0].(func(string) error)
	// exameventDescQuestionCount is the schema descriptor for question_count field.
	exameventDescQuestionCount := exameventFields[2].Descriptor()
	// examevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	examevent.DefaultQuestionCount = exameventDescQuestionCount.Default.(int)
	// exameventDescCorrectCount is the schema descriptor for correct_count field.
	exameventDescCorrectCount := exameventFields[3].Descriptor()
	// examevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	examevent.DefaultCorrectCount = exameventDescCorrectCount.Default.(int)
	// exameventDescRawScore is the schema descriptor for raw_score field.
	exameventDescRawScore := exameventFields[4].Descriptor()
	// examevent.DefaultRawScore holds the default value on creation for the raw_score field.
	examevent.DefaultRawScore = exameventDescRawScore.Default.(float64)
	// exameventDescScaledScore is the schema descriptor for scaled_score field.
	exameventDescScaledScore := exameventFields[5].Descriptor()
	// examevent.DefaultScaledScore holds the default value on creation for the scaled_score field.
	examevent.DefaultScaledScore = exameventDescScaledScore.Default.(int)
	// exameventDescPassed is the schema descriptor for passed field.
	exameventDescPassed := exameventFields[6].Descriptor()
	// examevent.DefaultPassed holds the default value on creation for the passed field.
	examevent.DefaultPassed = exameventDescPassed.Default.(bool)
	// exameventDescDurationSec is the schema descriptor for duration_sec field.
	exameventDescDurationSec := exameventFields[7].Descriptor()
	// examevent.DefaultDurationSec holds the default value on creation for the duration_sec field.
	examevent.DefaultDurationSec = exameventDescDurationSec.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
