package dto

import "encoding/json"

// Domain DTOs
type DomainResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Rank          string   `json:"rank"`
	UnlockLevel   int      `json:"unlock_level"`
	RequiredLevel int      `json:"required_level"`
	IsUnlocked    bool     `json:"is_unlocked"`
	TopicIDs      []string `json:"topic_ids"`
}

type DomainCollectionResponse struct {
	Domains  []DomainResponse `json:"domains"`
	Total    int              `json:"total"`
	Unlocked int              `json:"unlocked"`
}

// Topic DTOs
type TopicResponse struct {
	ID                string `json:"id"`
	DomainID          string `json:"domain_id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Order             int    `json:"order"`
	UnlockRequirement string `json:"unlock_requirement,omitempty"`
	TheoryContent     string `json:"theory_content"`
	XPReward          int    `json:"xp_reward"`
	ChallengeCount    int    `json:"challenge_count"`
}

// Challenge DTOs
type ChallengeResponse struct {
	ID          string          `json:"id"`
	TopicID     string          `json:"topic_id"`
	QuestID     string          `json:"quest_id,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Difficulty  string          `json:"difficulty"`
	Content     json.RawMessage `json:"content"`
	XPReward    int             `json:"xp_reward"`
	Hints       []string        `json:"hints"`
}

// Quest DTOs
type QuestResponse struct {
	ID            string          `json:"id"`
	TopicID       string          `json:"topic_id"`
	Title         string          `json:"title"`
	Narrative     string          `json:"narrative"`
	Objective     string          `json:"objective"`
	TheoryContent json.RawMessage `json:"theory_content,omitempty"`
	ChallengeIDs  []string        `json:"challenge_ids"`
	TotalXP       int             `json:"total_xp"`
	IsCompleted   bool            `json:"is_completed"`
}

// PracticeLink points at an external problem related to a quest.
type PracticeLink struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	URL        string `json:"url"`
}

// QuestCompletionResponse is the one-time celebratory payload issued
// when a quest transitions to complete. It is never persisted.
type QuestCompletionResponse struct {
	QuestID         string         `json:"quest_id"`
	QuestTitle      string         `json:"quest_title"`
	TotalXP         int            `json:"total_xp"`
	BonusXP         int            `json:"bonus_xp"`
	UnlockedContent []string       `json:"unlocked_content"`
	RelatedTopics   []string       `json:"related_topics"`
	PracticeLinks   []PracticeLink `json:"practice_links"`
}
