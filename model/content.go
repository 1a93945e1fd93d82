// model/content.go
package model

import (
	"encoding/json"
	"time"
)

// Domain is a top-level content category gated by rank.
type Domain struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon"`
	Rank        string `json:"rank"`         // F-Rank .. Monarch
	UnlockLevel int    `json:"unlock_level"` // informational; the gate is derived from Rank
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Topic is a themed group of challenges inside a domain.
type Topic struct {
	ID                string `json:"id" gorm:"primaryKey"`
	DomainID          string `json:"domain_id" gorm:"not null;index"`
	Name              string `json:"name" gorm:"not null"`
	Description       string `json:"description" gorm:"type:text"`
	Order             int    `json:"order" gorm:"not null"` // unlock sequence within the domain
	UnlockRequirement string `json:"unlock_requirement"`    // prerequisite topic id, empty if none
	TheoryContent     string `json:"theory_content" gorm:"type:text"`
	XPReward          int    `json:"xp_reward" gorm:"default:0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Domain Domain `json:"-" gorm:"foreignKey:DomainID"`
}

// Quest is a curated bundle of challenges with narrative framing and a
// one-time completion bonus.
type Quest struct {
	ID            string          `json:"id" gorm:"primaryKey"`
	TopicID       string          `json:"topic_id" gorm:"not null;index"`
	Title         string          `json:"title" gorm:"not null"`
	Narrative     string          `json:"narrative" gorm:"type:text"`
	Objective     string          `json:"objective" gorm:"type:text"`
	TheoryContent json.RawMessage `json:"theory_content" gorm:"type:jsonb"`
	ChallengeIDs  json.RawMessage `json:"challenge_ids" gorm:"type:jsonb"` // JSON array of challenge ids
	TotalXP       int             `json:"total_xp" gorm:"default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Topic Topic `json:"-" gorm:"foreignKey:TopicID"`
}

// Challenge is a single gradable exercise. Content and CorrectAnswer
// are opaque payloads whose shape is keyed by Type; they are validated
// at the store boundary and treated as pass-through everywhere else.
type Challenge struct {
	ID            string          `json:"id" gorm:"primaryKey"`
	TopicID       string          `json:"topic_id" gorm:"not null;index"`
	QuestID       string          `json:"quest_id" gorm:"index"`
	Title         string          `json:"title" gorm:"not null"`
	Description   string          `json:"description" gorm:"type:text"`
	Type          string          `json:"type"`       // multiple_choice, pattern_recognition, visual_builder
	Difficulty    string          `json:"difficulty"` // easy, medium, hard
	Content       json.RawMessage `json:"content" gorm:"type:jsonb"`
	CorrectAnswer json.RawMessage `json:"correct_answer" gorm:"type:jsonb"`
	Explanation   string          `json:"explanation" gorm:"type:text"`
	XPReward      int             `json:"xp_reward" gorm:"default:50"`
	Hints         json.RawMessage `json:"hints" gorm:"type:jsonb"` // JSON array of pre-authored hints
	IsActive      bool            `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Topic Topic `json:"-" gorm:"foreignKey:TopicID"`
}

// UserProgress holds a user's progression state. XP, Level and Rank are
// always written together through the award path so the stored triple
// stays consistent.
type UserProgress struct {
	ID                  string          `json:"id" gorm:"primaryKey"`
	UserID              string          `json:"user_id" gorm:"not null;uniqueIndex"`
	XP                  int             `json:"xp" gorm:"default:0"`
	Level               int             `json:"level" gorm:"default:1"`
	Rank                string          `json:"rank" gorm:"default:F-Rank"`
	Streak              int             `json:"streak" gorm:"default:0"`
	LastActivityDate    *time.Time      `json:"last_activity_date"`
	CompletedChallenges json.RawMessage `json:"completed_challenges" gorm:"type:jsonb"`
	CompletedQuests     json.RawMessage `json:"completed_quests" gorm:"type:jsonb"`

	// Independent per-skill counters.
	DataStructuresScore int `json:"data_structures_score" gorm:"default:0"`
	AlgorithmsScore     int `json:"algorithms_score" gorm:"default:0"`
	ProblemSolvingScore int `json:"problem_solving_score" gorm:"default:0"`
	SystemDesignScore   int `json:"system_design_score" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChallengeAttempt is the one progress record per (user, challenge)
// pair. It is updated in place on retries, never replaced.
type ChallengeAttempt struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"not null;index:idx_attempt_user_challenge,unique"`
	ChallengeID string     `json:"challenge_id" gorm:"not null;index:idx_attempt_user_challenge,unique"`
	TopicID     string     `json:"topic_id" gorm:"index"`
	Completed   bool       `json:"completed" gorm:"not null"`
	Score       int        `json:"score" gorm:"not null"`
	Attempts    int        `json:"attempts" gorm:"not null"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
