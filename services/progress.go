// services/progress.go
package services

import (
	"time"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/progression"
	"github.com/ascend-learning/ascend_api/shared"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// attemptStore is the slice of PostgresService the submission flow
// reads and writes.
type attemptStore interface {
	GetChallenge(id string) (*model.Challenge, error)
	GetAttempt(userID, challengeID string) (*model.ChallengeAttempt, error)
	CreateAttempt(attempt *model.ChallengeAttempt) error
	UpdateAttempt(attempt *model.ChallengeAttempt) error
	GetUserProgress(userID string) (*model.UserProgress, error)
	UpdateUserProgress(progress *model.UserProgress) error
}

type rewardIssuer interface {
	AwardXP(userID string, amount int) (*dto.XPAwardResponse, error)
	UpdateStreak(userID string) (*dto.StreakResponse, error)
}

type questEvaluator interface {
	CheckAndCompleteQuest(userID, questID string) (*dto.QuestCompletionResponse, error)
}

// ProgressService records challenge attempts and orchestrates answer
// submission. It never touches XP directly; awards always go through
// UserService.AwardXP.
type ProgressService struct {
	appContext.DefaultService

	sqlSvc        attemptStore
	userSvc       rewardIssuer
	questSvc      questEvaluator
	monitoringSvc *MonitoringService
}

const PROGRESS_SVC = "progress_svc"

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.questSvc = svc.Service(QUEST_SVC).(*QuestService)
	svc.monitoringSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// TrackAttempt upserts the one attempt record per (user, challenge)
// pair: attempts++ on retries, completed/score/completedAt overwritten
// each call. On success the challenge id is unioned into the user's
// completed set; the bool reports whether that union added it, so the
// caller can tell a first completion from a repeat.
func (svc *ProgressService) TrackAttempt(userID, challengeID, topicID string, success bool, score int) (*dto.AttemptResponse, bool, error) {
	now := time.Now()

	attempt, err := svc.sqlSvc.GetAttempt(userID, challengeID)
	if err != nil {
		attemptID, _ := uuid.NewV7()
		attempt = &model.ChallengeAttempt{
			ID:          attemptID.String(),
			UserID:      userID,
			ChallengeID: challengeID,
			TopicID:     topicID,
			Attempts:    1,
			CreatedAt:   now,
		}
		applyOutcome(attempt, success, score, now)
		if err := svc.sqlSvc.CreateAttempt(attempt); err != nil {
			return nil, false, shared.NewInternalError(err, "Failed to record attempt")
		}
	} else {
		attempt.Attempts++
		applyOutcome(attempt, success, score, now)
		if err := svc.sqlSvc.UpdateAttempt(attempt); err != nil {
			return nil, false, shared.NewInternalError(err, "Failed to update attempt")
		}
	}

	newlyCompleted := false
	if success {
		newlyCompleted, err = svc.markChallengeCompleted(userID, challengeID)
		if err != nil {
			return nil, false, err
		}
	}

	return &dto.AttemptResponse{
		UserID:      attempt.UserID,
		ChallengeID: attempt.ChallengeID,
		TopicID:     attempt.TopicID,
		Completed:   attempt.Completed,
		Score:       attempt.Score,
		Attempts:    attempt.Attempts,
		CompletedAt: attempt.CompletedAt,
	}, newlyCompleted, nil
}

// applyOutcome overwrites the graded fields with the latest
// submission's result. A wrong retry after an earlier success resets
// completed/score; the append-only completed set on UserProgress is
// what preserves earned completions.
func applyOutcome(attempt *model.ChallengeAttempt, success bool, score int, now time.Time) {
	attempt.Completed = success
	attempt.Score = score
	if success {
		attempt.CompletedAt = &now
	} else {
		attempt.CompletedAt = nil
	}
}

func (svc *ProgressService) markChallengeCompleted(userID, challengeID string) (bool, error) {
	progress, err := svc.sqlSvc.GetUserProgress(userID)
	if err != nil {
		return false, shared.NewNotFoundError(err, "User progress not found")
	}

	completed, added := progression.UnionChallenge(decodeIDList(progress.CompletedChallenges), challengeID)
	if !added {
		return false, nil
	}

	progress.CompletedChallenges = encodeIDList(completed)
	if err := svc.sqlSvc.UpdateUserProgress(progress); err != nil {
		return false, shared.NewInternalError(err, "Failed to record challenge completion")
	}
	return true, nil
}

// SubmitAnswer grades one submission and, when it is the first correct
// answer for the challenge, runs the reward sequence in fixed order:
// award XP, advance the streak, evaluate the challenge's quest. The
// sequence is best effort and non transactional; a failed later step
// is logged and the earlier writes stand.
func (svc *ProgressService) SubmitAnswer(userID, challengeID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, dto.NewValidationError(err)
	}

	challenge, err := svc.sqlSvc.GetChallenge(challengeID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Challenge not found")
	}

	correct := shared.AnswersEqual(challenge.CorrectAnswer, req.Answer)
	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordAnswerSubmission(correct)
	}

	score := 0
	if correct {
		score = challenge.XPReward
	}

	_, newlyCompleted, err := svc.TrackAttempt(userID, challengeID, challenge.TopicID, correct, score)
	if err != nil {
		return nil, err
	}

	resp := &dto.SubmitAnswerResponse{
		Correct:  correct,
		XPReward: challenge.XPReward,
	}
	if !correct {
		return resp, nil
	}
	resp.Explanation = challenge.Explanation

	if newlyCompleted {
		award, err := svc.userSvc.AwardXP(userID, challenge.XPReward)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id":      userID,
				"challenge_id": challengeID,
			}).Error("Failed to award challenge XP")
		} else {
			resp.Award = award
		}
	}

	streak, err := svc.userSvc.UpdateStreak(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("Failed to update streak")
	} else {
		resp.Streak = streak
	}

	if challenge.QuestID != "" {
		completion, err := svc.questSvc.CheckAndCompleteQuest(userID, challenge.QuestID)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"user_id":  userID,
				"quest_id": challenge.QuestID,
			}).Error("Failed to evaluate quest completion")
		} else {
			resp.QuestCompletion = completion
		}
	}

	return resp, nil
}

// GetAttempt returns the attempt record for one challenge, 404 when
// the user has never tried it.
func (svc *ProgressService) GetAttempt(userID, challengeID string) (*dto.AttemptResponse, error) {
	attempt, err := svc.sqlSvc.GetAttempt(userID, challengeID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "No attempt recorded for this challenge")
	}

	return &dto.AttemptResponse{
		UserID:      attempt.UserID,
		ChallengeID: attempt.ChallengeID,
		TopicID:     attempt.TopicID,
		Completed:   attempt.Completed,
		Score:       attempt.Score,
		Attempts:    attempt.Attempts,
		CompletedAt: attempt.CompletedAt,
	}, nil
}
