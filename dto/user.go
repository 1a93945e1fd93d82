package dto

import "time"

type UserProfileResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	AvatarURL   string     `json:"avatar_url"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
}

func (r UpdateProfileRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SkillScoresResponse struct {
	DataStructures int `json:"data_structures"`
	Algorithms     int `json:"algorithms"`
	ProblemSolving int `json:"problem_solving"`
	SystemDesign   int `json:"system_design"`
}

type UserProgressResponse struct {
	UserID              string              `json:"user_id"`
	XP                  int                 `json:"xp"`
	Level               int                 `json:"level"`
	Rank                string              `json:"rank"`
	XPForNextLevel      int                 `json:"xp_for_next_level"`
	XPProgress          float64             `json:"xp_progress"`
	Streak              int                 `json:"streak"`
	LastActivity        *time.Time          `json:"last_activity"`
	CompletedChallenges []string            `json:"completed_challenges"`
	CompletedQuests     []string            `json:"completed_quests"`
	SkillScores         SkillScoresResponse `json:"skill_scores"`
}

type StreakResponse struct {
	Streak      int  `json:"streak"`
	Maintained  bool `json:"streak_maintained"`
	Incremented bool `json:"streak_incremented"`
	IsNewStreak bool `json:"is_new_streak"`
}

type LeaderboardUserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Rank     string `json:"rank"`
	Position int    `json:"position"`
}

type LeaderboardResponse struct {
	Period      string                    `json:"period"`
	CurrentUser LeaderboardUserResponse   `json:"current_user"`
	TopUsers    []LeaderboardUserResponse `json:"top_users"`
}
