// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathgarden/ent/answerevent"
	"github.com/abhisek/mathgarden/ent/rewardevent"
	"github.com/abhisek/mathgarden/ent/schema"
	"github.com/abhisek/mathgarden/ent/sessionevent"
	"github.com/abhisek/mathgarden/ent/snapshot"
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
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[1].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	// answereventDescOperation is the schema descriptor for operation field.
	answereventDescOperation := answereventFields[2].Descriptor()
	// answerevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	answerevent.OperationValidator = answereventDescOperation.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[3].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[4].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescSource is the schema descriptor for source field.
	rewardeventDescSource := rewardeventFields[0].Descriptor()
	// rewardevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	rewardevent.SourceValidator = rewardeventDescSource.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescStarsEarned is the schema descriptor for stars_earned field.
	sessioneventDescStarsEarned := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultStarsEarned holds the default value on creation for the stars_earned field.
	sessionevent.DefaultStarsEarned = sessioneventDescStarsEarned.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
