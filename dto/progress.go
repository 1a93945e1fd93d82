package dto

import (
	"encoding/json"
	"time"
)

type SubmitAnswerRequest struct {
	Answer json.RawMessage `json:"answer" validate:"required"`
}

func (r SubmitAnswerRequest) Validate() error {
	return GetValidator().Struct(r)
}

// XPAwardResponse is the delta produced by one XP award.
type XPAwardResponse struct {
	XPAwarded bool   `json:"xp_awarded"`
	NewXP     int    `json:"new_xp"`
	NewLevel  int    `json:"new_level"`
	NewRank   string `json:"new_rank"`
	LeveledUp bool   `json:"leveled_up"`
	RankedUp  bool   `json:"ranked_up"`
	OldLevel  int    `json:"old_level"`
	OldRank   string `json:"old_rank"`
}

// SubmitAnswerResponse reports one submission: correctness, the XP
// delta when the answer was right, the streak transition, and the
// quest completion payload when this submission finished a quest.
type SubmitAnswerResponse struct {
	Correct         bool                     `json:"correct"`
	Explanation     string                   `json:"explanation,omitempty"`
	XPReward        int                      `json:"xp_reward"`
	Award           *XPAwardResponse         `json:"award,omitempty"`
	Streak          *StreakResponse          `json:"streak,omitempty"`
	QuestCompletion *QuestCompletionResponse `json:"quest_completion,omitempty"`
}

type AttemptResponse struct {
	UserID      string     `json:"user_id"`
	ChallengeID string     `json:"challenge_id"`
	TopicID     string     `json:"topic_id"`
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`
	Attempts    int        `json:"attempts"`
	CompletedAt *time.Time `json:"completed_at"`
}
