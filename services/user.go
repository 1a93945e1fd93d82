// services/user.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/progression"
	"github.com/ascend-learning/ascend_api/shared"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// leaderboardCache is the slice of RedisService the leaderboard uses.
type leaderboardCache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// UserService owns the user progression state. AwardXP is the single
// path that mutates XP; level and rank are always rewritten with it.
type UserService struct {
	appContext.DefaultService

	sqlSvc        *PostgresService
	redisSvc      leaderboardCache
	monitoringSvc *MonitoringService
}

const USER_SVC = "user_svc"

const leaderboardCacheKey = "leaderboard:all_time"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// InitializeProgress creates the progress row after registration:
// XP 0, level 1, F-Rank, empty completed sets.
func (svc *UserService) InitializeProgress(userID string) error {
	progressID, _ := uuid.NewV7()
	progress := &model.UserProgress{
		ID:                  progressID.String(),
		UserID:              userID,
		XP:                  0,
		Level:               1,
		Rank:                progression.RankF,
		Streak:              0,
		CompletedChallenges: json.RawMessage("[]"),
		CompletedQuests:     json.RawMessage("[]"),
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	_, err := svc.sqlSvc.CreateUserProgress(progress)
	return err
}

// AwardXP adds amount to the user's XP and persists the recomputed
// level and rank together with it. Every XP mutation in the system
// goes through here.
func (svc *UserService) AwardXP(userID string, amount int) (*dto.XPAwardResponse, error) {
	if amount <= 0 {
		return nil, shared.NewBadRequestError(fmt.Errorf("amount %d", amount), "XP amount must be positive")
	}

	progress, err := svc.sqlSvc.GetUserProgress(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User not found")
	}

	res := progression.ApplyAward(progress.XP, amount)

	progress.XP = res.NewXP
	progress.Level = res.NewLevel
	progress.Rank = res.NewRank

	if err := svc.sqlSvc.UpdateUserProgress(progress); err != nil {
		return nil, shared.NewInternalError(err, "Failed to persist XP award")
	}

	if res.LeveledUp {
		log.WithFields(log.Fields{
			"user_id":   userID,
			"old_level": res.OldLevel,
			"new_level": res.NewLevel,
		}).Info("User leveled up")
	}

	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordXPAward(amount, res.LeveledUp)
	}

	svc.invalidateLeaderboard()

	return &dto.XPAwardResponse{
		XPAwarded: true,
		NewXP:     res.NewXP,
		NewLevel:  res.NewLevel,
		NewRank:   res.NewRank,
		LeveledUp: res.LeveledUp,
		RankedUp:  res.RankedUp,
		OldLevel:  res.OldLevel,
		OldRank:   res.OldRank,
	}, nil
}

// UpdateStreak applies one qualifying activity to the user's streak.
// A missing user record yields the safe default (fresh streak of 1)
// instead of an error; streaks are cosmetic and availability wins.
func (svc *UserService) UpdateStreak(userID string) (*dto.StreakResponse, error) {
	progress, err := svc.sqlSvc.GetUserProgress(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Streak update for unknown user, returning default")
		return &dto.StreakResponse{
			Streak:      1,
			Maintained:  false,
			Incremented: true,
			IsNewStreak: true,
		}, nil
	}

	res := progression.AdvanceStreak(progress.Streak, progress.LastActivityDate, time.Now())

	progress.Streak = res.Streak
	progress.LastActivityDate = &res.LastActivity
	if err := svc.sqlSvc.UpdateUserProgress(progress); err != nil {
		return nil, shared.NewInternalError(err, "Failed to persist streak")
	}

	return &dto.StreakResponse{
		Streak:      res.Streak,
		Maintained:  res.Maintained,
		Incremented: res.Incremented,
		IsNewStreak: res.IsNewStreak,
	}, nil
}

// ==================== PROGRESS VIEW ====================

func (svc *UserService) GetUserProgress(userID string) (*dto.UserProgressResponse, error) {
	progress, err := svc.sqlSvc.GetUserProgress(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User progress not found")
	}

	return &dto.UserProgressResponse{
		UserID:              userID,
		XP:                  progress.XP,
		Level:               progress.Level,
		Rank:                progress.Rank,
		XPForNextLevel:      progression.XPForNextLevel(progress.XP),
		XPProgress:          progression.XPProgress(progress.XP),
		Streak:              progress.Streak,
		LastActivity:        progress.LastActivityDate,
		CompletedChallenges: decodeIDList(progress.CompletedChallenges),
		CompletedQuests:     decodeIDList(progress.CompletedQuests),
		SkillScores: dto.SkillScoresResponse{
			DataStructures: progress.DataStructuresScore,
			Algorithms:     progress.AlgorithmsScore,
			ProblemSolving: progress.ProblemSolvingScore,
			SystemDesign:   progress.SystemDesignScore,
		},
	}, nil
}

func decodeIDList(raw json.RawMessage) []string {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []string{}
	}
	return ids
}

func encodeIDList(ids []string) json.RawMessage {
	b, err := json.Marshal(ids)
	if err != nil {
		return json.RawMessage("[]")
	}
	return b
}

// ==================== PROFILE METHODS ====================

func (svc *UserService) GetUserProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User not found")
	}

	return &dto.UserProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		AvatarURL:   user.AvatarURL,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}, nil
}

func (svc *UserService) UpdateUserProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, dto.NewValidationError(err)
	}

	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User not found")
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := svc.sqlSvc.GetUserByUsername(req.Username); err == nil {
			return nil, shared.NewConflictError(fmt.Errorf("username taken"), "Username is already taken")
		}
		user.Username = req.Username
	}

	if err := svc.sqlSvc.UpdateUser(user); err != nil {
		return nil, shared.NewInternalError(err, "Failed to update profile")
	}

	return svc.GetUserProfile(userID)
}

// ==================== LEADERBOARD METHODS ====================

func (svc *UserService) GetLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	ctx := context.Background()

	var cached dto.LeaderboardResponse
	cacheKey := fmt.Sprintf("%s:%d", leaderboardCacheKey, limit)
	if err := svc.redisSvc.GetJSON(ctx, cacheKey, &cached); err == nil && len(cached.TopUsers) > 0 {
		svc.fillCurrentUser(&cached, currentUserID)
		return &cached, nil
	}

	rows, err := svc.sqlSvc.GetAllTimeLeaderboard(limit)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load leaderboard")
	}

	topUsers := make([]dto.LeaderboardUserResponse, 0, len(rows))
	for i, row := range rows {
		user, err := svc.sqlSvc.GetUser(row.UserID)
		if err != nil {
			log.WithError(err).WithField("user_id", row.UserID).Warn("Leaderboard entry without user row")
			continue
		}

		topUsers = append(topUsers, dto.LeaderboardUserResponse{
			UserID:   row.UserID,
			Username: user.Username,
			Level:    row.Level,
			XP:       row.XP,
			Rank:     row.Rank,
			Position: i + 1,
		})
	}

	resp := &dto.LeaderboardResponse{
		Period:   "all_time",
		TopUsers: topUsers,
	}

	if err := svc.redisSvc.Set(ctx, cacheKey, resp, time.Minute); err != nil {
		log.WithError(err).Warn("Failed to cache leaderboard")
	}

	svc.fillCurrentUser(resp, currentUserID)
	return resp, nil
}

func (svc *UserService) fillCurrentUser(resp *dto.LeaderboardResponse, currentUserID string) {
	if currentUserID == "" {
		return
	}

	for _, u := range resp.TopUsers {
		if u.UserID == currentUserID {
			resp.CurrentUser = u
			return
		}
	}

	position, err := svc.sqlSvc.GetUserLeaderboardPosition(currentUserID)
	if err != nil {
		return
	}
	progress, err := svc.sqlSvc.GetUserProgress(currentUserID)
	if err != nil {
		return
	}
	user, err := svc.sqlSvc.GetUser(currentUserID)
	if err != nil {
		return
	}

	resp.CurrentUser = dto.LeaderboardUserResponse{
		UserID:   currentUserID,
		Username: user.Username,
		Level:    progress.Level,
		XP:       progress.XP,
		Rank:     progress.Rank,
		Position: position,
	}
}

func (svc *UserService) invalidateLeaderboard() {
	ctx := context.Background()
	for _, limit := range []int{10, 25, 50, 100} {
		key := fmt.Sprintf("%s:%d", leaderboardCacheKey, limit)
		if err := svc.redisSvc.Delete(ctx, key); err != nil {
			log.WithError(err).WithField("key", key).Debug("Failed to invalidate leaderboard cache")
		}
	}
}
