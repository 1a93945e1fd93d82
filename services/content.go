// services/content.go
package services

import (
	"encoding/json"
	"fmt"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/progression"
	"github.com/ascend-learning/ascend_api/shared"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

// ContentService serves the learning catalog: domains, topics,
// challenges and their unlock decoration for the calling user.
type ContentService struct {
	appContext.DefaultService

	sqlSvc *PostgresService
}

const CONTENT_SVC = "content_svc"

func (svc ContentService) Id() string {
	return CONTENT_SVC
}

func (svc *ContentService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	return nil
}

// ==================== DOMAIN METHODS ====================

// GetDomains lists active domains decorated with the caller's unlock
// status, derived from their level against each domain's rank gate.
func (svc *ContentService) GetDomains(userID string) (*dto.DomainCollectionResponse, error) {
	domains, err := svc.sqlSvc.GetDomains()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load domains")
	}

	userLevel := svc.userLevel(userID)

	out := make([]dto.DomainResponse, 0, len(domains))
	unlocked := 0
	for i := range domains {
		resp, err := svc.toDomainResponse(&domains[i], userLevel)
		if err != nil {
			return nil, err
		}
		if resp.IsUnlocked {
			unlocked++
		}
		out = append(out, *resp)
	}

	return &dto.DomainCollectionResponse{
		Domains:  out,
		Total:    len(out),
		Unlocked: unlocked,
	}, nil
}

func (svc *ContentService) GetDomain(userID, domainID string) (*dto.DomainResponse, error) {
	domain, err := svc.sqlSvc.GetDomain(domainID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Domain not found")
	}
	return svc.toDomainResponse(domain, svc.userLevel(userID))
}

func (svc *ContentService) userLevel(userID string) int {
	progress, err := svc.sqlSvc.GetUserProgress(userID)
	if err != nil {
		return 1
	}
	return progress.Level
}

func (svc *ContentService) toDomainResponse(domain *model.Domain, userLevel int) (*dto.DomainResponse, error) {
	topics, err := svc.sqlSvc.GetTopicsByDomain(domain.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load domain topics")
	}

	topicIDs := make([]string, 0, len(topics))
	for _, t := range topics {
		topicIDs = append(topicIDs, t.ID)
	}

	return &dto.DomainResponse{
		ID:            domain.ID,
		Name:          domain.Name,
		Description:   domain.Description,
		Icon:          domain.Icon,
		Rank:          domain.Rank,
		UnlockLevel:   domain.UnlockLevel,
		RequiredLevel: progression.RequiredLevelForRank(domain.Rank),
		IsUnlocked:    progression.IsDomainUnlocked(domain.Rank, userLevel),
		TopicIDs:      topicIDs,
	}, nil
}

// ==================== TOPIC METHODS ====================

func (svc *ContentService) GetTopicsByDomain(domainID string) ([]dto.TopicResponse, error) {
	topics, err := svc.sqlSvc.GetTopicsByDomain(domainID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load topics")
	}

	out := make([]dto.TopicResponse, 0, len(topics))
	for i := range topics {
		resp, err := svc.toTopicResponse(&topics[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (svc *ContentService) GetTopic(topicID string) (*dto.TopicResponse, error) {
	topic, err := svc.sqlSvc.GetTopic(topicID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Topic not found")
	}
	return svc.toTopicResponse(topic)
}

func (svc *ContentService) toTopicResponse(topic *model.Topic) (*dto.TopicResponse, error) {
	count, err := svc.sqlSvc.CountChallengesByTopic(topic.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to count topic challenges")
	}

	return &dto.TopicResponse{
		ID:                topic.ID,
		DomainID:          topic.DomainID,
		Name:              topic.Name,
		Description:       topic.Description,
		Order:             topic.Order,
		UnlockRequirement: topic.UnlockRequirement,
		TheoryContent:     topic.TheoryContent,
		XPReward:          topic.XPReward,
		ChallengeCount:    int(count),
	}, nil
}

// ==================== CHALLENGE METHODS ====================

func (svc *ContentService) GetChallengesByTopic(topicID string) ([]dto.ChallengeResponse, error) {
	challenges, err := svc.sqlSvc.GetChallengesByTopic(topicID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load challenges")
	}

	out := make([]dto.ChallengeResponse, 0, len(challenges))
	for i := range challenges {
		out = append(out, *toChallengeResponse(&challenges[i]))
	}
	return out, nil
}

func (svc *ContentService) GetChallenge(challengeID string) (*dto.ChallengeResponse, error) {
	challenge, err := svc.sqlSvc.GetChallenge(challengeID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Challenge not found")
	}
	return toChallengeResponse(challenge), nil
}

// toChallengeResponse strips the correct answer; it never leaves the
// service layer.
func toChallengeResponse(challenge *model.Challenge) *dto.ChallengeResponse {
	return &dto.ChallengeResponse{
		ID:          challenge.ID,
		TopicID:     challenge.TopicID,
		QuestID:     challenge.QuestID,
		Title:       challenge.Title,
		Description: challenge.Description,
		Type:        challenge.Type,
		Difficulty:  challenge.Difficulty,
		Content:     challenge.Content,
		XPReward:    challenge.XPReward,
		Hints:       parseHints(challenge.Hints),
	}
}

func parseHints(raw []byte) []string {
	var hints []string
	if err := sonic.Unmarshal(raw, &hints); err != nil {
		return []string{}
	}
	return hints
}

// ==================== CONTENT VALIDATION ====================

type multipleChoiceContent struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type patternRecognitionContent struct {
	CodeSnippets []string `json:"code_snippets"`
	Patterns     []string `json:"patterns"`
}

type visualBuilderContent struct {
	Operations []string        `json:"operations"`
	Target     json.RawMessage `json:"target"`
}

// ValidateChallengeContent checks a challenge payload against the
// shape its type requires. Unknown types pass through opaque; the
// union is open ended. Used by the seeder before inserts.
func ValidateChallengeContent(challenge *model.Challenge) error {
	switch challenge.Type {
	case shared.ChallengeTypeMultipleChoice:
		var c multipleChoiceContent
		if err := sonic.Unmarshal(challenge.Content, &c); err != nil {
			return fmt.Errorf("multiple_choice content: %w", err)
		}
		if c.Question == "" || len(c.Options) < 2 {
			return fmt.Errorf("multiple_choice content requires a question and at least 2 options")
		}
	case shared.ChallengeTypePatternRecognition:
		var c patternRecognitionContent
		if err := sonic.Unmarshal(challenge.Content, &c); err != nil {
			return fmt.Errorf("pattern_recognition content: %w", err)
		}
		if len(c.CodeSnippets) == 0 || len(c.Patterns) == 0 {
			return fmt.Errorf("pattern_recognition content requires code snippets and patterns")
		}
	case shared.ChallengeTypeVisualBuilder:
		var c visualBuilderContent
		if err := sonic.Unmarshal(challenge.Content, &c); err != nil {
			return fmt.Errorf("visual_builder content: %w", err)
		}
		if len(c.Operations) == 0 || len(c.Target) == 0 {
			return fmt.Errorf("visual_builder content requires operations and a target")
		}
	default:
		log.WithField("type", challenge.Type).Debug("Unknown challenge type, content passed through unvalidated")
	}

	if len(challenge.CorrectAnswer) == 0 {
		return fmt.Errorf("challenge %s has no correct answer", challenge.ID)
	}
	return nil
}
