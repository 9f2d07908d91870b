package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LedgerData is the persisted form of the player ledger. The ledger
// package owns the domain type and converts through this struct; the
// store only sees JSON.
type LedgerData struct {
	Version         int             `json:"version"`
	Stars           int             `json:"stars"`
	UnlockedAvatars []string        `json:"unlocked_avatars"`
	CurrentAvatar   string          `json:"current_avatar"`
	UnlockedThemes  []string        `json:"unlocked_themes"`
	CurrentTheme    string          `json:"current_theme"`
	BestStreak      int             `json:"best_streak"`
	SoundEnabled    bool            `json:"sound_enabled"`
	LastLogin       string          `json:"last_login,omitempty"`
	DailyQuest      *QuestData      `json:"daily_quest,omitempty"`
	Achievements    []string        `json:"achievements"`
	Garden          *GardenData     `json:"garden,omitempty"`
	Stats           *PlayerStatData `json:"stats,omitempty"`
}

// QuestData is the persisted daily quest state.
type QuestData struct {
	Target   int    `json:"target"`
	Progress int    `json:"progress"`
	Claimed  bool   `json:"claimed"`
	Date     string `json:"date,omitempty"`
}

// GardenData is the persisted garden state.
type GardenData struct {
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	TreeStage   int    `json:"tree_stage"`
	LastWatered string `json:"last_watered,omitempty"`
}

// PlayerStatData is the persisted lifetime stats block.
type PlayerStatData struct {
	TotalQuestions      int `json:"total_questions"`
	TotalCorrect        int `json:"total_correct"`
	TimeAttackHighScore int `json:"time_attack_high_score"`
}

// LedgerRepo persists the player ledger write-through: every durable
// mutation saves a fresh copy, and only the latest copy is read back.
type LedgerRepo interface {
	// Save stores the ledger. Older copies beyond a small retention
	// window are pruned.
	Save(ctx context.Context, data *LedgerData) error

	// Latest returns the most recent ledger. A missing or undecodable
	// ledger yields nil so the caller falls back to defaults.
	Latest(ctx context.Context) (*LedgerData, error)
}

// AnswerEventData captures a single answered question.
type AnswerEventData struct {
	SessionID     string
	Mode          string
	Operation     string
	Difficulty    string
	QuestionText  string
	CorrectAnswer int
	PlayerAnswer  int
	Correct       bool
}

// RewardEventData captures a star credit or debit.
type RewardEventData struct {
	Source string
	Amount int
	// Balance is the star total after applying Amount.
	Balance int
	Detail  string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	Action            string
	Mode              string
	QuestionsAnswered int
	StarsEarned       int
	DurationSecs      int
}

// RewardEventRecord is a reward event read back from the log.
type RewardEventRecord struct {
	Source    string
	Amount    int
	Balance   int
	Detail    string
	Sequence  int64
	Timestamp time.Time
}

// SessionSummaryRecord is a finished session read back from the log.
type SessionSummaryRecord struct {
	SessionID         string
	Mode              string
	Timestamp         time.Time
	QuestionsAnswered int
	StarsEarned       int
	DurationSecs      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendRewardEvent records a star credit or debit.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryRewardEvents returns reward events, newest first.
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// AnswerTotals returns lifetime answered/correct counts from the log.
	AnswerTotals(ctx context.Context) (total, correct int, err error)
}
