package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/ascend-learning/ascend_api/dto"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	RequiredAuth() fiber.Handler
}

type UserServiceInterface interface {
	GetUserProfile(userID string) (*dto.UserProfileResponse, error)
	UpdateUserProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	GetUserProgress(userID string) (*dto.UserProgressResponse, error)
	UpdateStreak(userID string) (*dto.StreakResponse, error)
	GetLeaderboard(limit int, currentUserID string) (*dto.LeaderboardResponse, error)
}

type ContentServiceInterface interface {
	GetDomains(userID string) (*dto.DomainCollectionResponse, error)
	GetDomain(userID, domainID string) (*dto.DomainResponse, error)
	GetTopicsByDomain(domainID string) ([]dto.TopicResponse, error)
	GetTopic(topicID string) (*dto.TopicResponse, error)
	GetChallengesByTopic(topicID string) ([]dto.ChallengeResponse, error)
	GetChallenge(challengeID string) (*dto.ChallengeResponse, error)
}

type ProgressServiceInterface interface {
	SubmitAnswer(userID, challengeID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetAttempt(userID, challengeID string) (*dto.AttemptResponse, error)
}

type QuestServiceInterface interface {
	GetQuest(userID, questID string) (*dto.QuestResponse, error)
	GetQuestsByTopic(userID, topicID string) ([]dto.QuestResponse, error)
}

type HintServiceInterface interface {
	GetHint(userID, challengeID string, attempts int) (*dto.HintResponse, error)
}

type MediaServiceInterface interface {
	UploadAvatar(userID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
}

type RateLimitServiceInterface interface {
	Allow(name, callerID string) error
}
