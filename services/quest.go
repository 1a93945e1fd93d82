// services/quest.go
package services

import (
	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/progression"
	"github.com/ascend-learning/ascend_api/shared"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

// questStore is the slice of PostgresService the quest flow reads and
// writes.
type questStore interface {
	GetUserProgress(userID string) (*model.UserProgress, error)
	UpdateUserProgress(progress *model.UserProgress) error
	GetQuest(id string) (*model.Quest, error)
	GetQuestsByTopic(topicID string) ([]model.Quest, error)
}

type xpAwarder interface {
	AwardXP(userID string, amount int) (*dto.XPAwardResponse, error)
}

// QuestService evaluates quest completion and issues the one-time
// completion payload.
type QuestService struct {
	appContext.DefaultService

	sqlSvc        questStore
	userSvc       xpAwarder
	monitoringSvc *MonitoringService
}

const QUEST_SVC = "quest_svc"

// QuestCompletionBonusXP is awarded once, on top of the quest's
// nominal XP, when the quest transitions to complete.
const QuestCompletionBonusXP = 200

func (svc QuestService) Id() string {
	return QUEST_SVC
}

func (svc *QuestService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.monitoringSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

// CheckAndCompleteQuest evaluates whether the user has completed every
// challenge in the quest and, on the transition to complete, records
// the quest, awards the bonus XP and returns the completion payload.
// Already-completed quests and incomplete quests both return nil with
// no error. The quest record and the XP award are two writes with no
// transaction between them; a failed award is logged and the quest
// stays recorded.
func (svc *QuestService) CheckAndCompleteQuest(userID, questID string) (*dto.QuestCompletionResponse, error) {
	progress, err := svc.sqlSvc.GetUserProgress(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User progress not found")
	}

	completedQuests := decodeIDList(progress.CompletedQuests)
	for _, id := range completedQuests {
		if id == questID {
			return nil, nil
		}
	}

	quest, err := svc.sqlSvc.GetQuest(questID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Quest not found")
	}

	challengeIDs := decodeIDList(quest.ChallengeIDs)
	if !progression.QuestComplete(challengeIDs, decodeIDList(progress.CompletedChallenges)) {
		return nil, nil
	}

	progress.CompletedQuests = encodeIDList(append(completedQuests, questID))
	if err := svc.sqlSvc.UpdateUserProgress(progress); err != nil {
		return nil, shared.NewInternalError(err, "Failed to record quest completion")
	}

	if _, err := svc.userSvc.AwardXP(userID, QuestCompletionBonusXP); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id":  userID,
			"quest_id": questID,
		}).Error("Failed to award quest bonus XP")
	}

	log.WithFields(log.Fields{
		"user_id":  userID,
		"quest_id": questID,
	}).Info("Quest completed")

	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordQuestCompletion()
	}

	return svc.buildCompletionPayload(quest), nil
}

func (svc *QuestService) buildCompletionPayload(quest *model.Quest) *dto.QuestCompletionResponse {
	relatedTopics := []string{quest.TopicID}

	return &dto.QuestCompletionResponse{
		QuestID:    quest.ID,
		QuestTitle: quest.Title,
		TotalXP:    quest.TotalXP,
		BonusXP:    QuestCompletionBonusXP,
		UnlockedContent: []string{
			"Deeper theory content",
			"Advanced challenges",
			"Related topic connections",
		},
		RelatedTopics: relatedTopics,
		PracticeLinks: []dto.PracticeLink{
			{
				Title:      "Valid Parentheses",
				Difficulty: shared.DifficultyEasy,
				URL:        "https://leetcode.com/problems/valid-parentheses/",
			},
			{
				Title:      "Min Stack",
				Difficulty: shared.DifficultyMedium,
				URL:        "https://leetcode.com/problems/min-stack/",
			},
		},
	}
}

// GetQuest returns one quest decorated with the caller's completion
// state.
func (svc *QuestService) GetQuest(userID, questID string) (*dto.QuestResponse, error) {
	quest, err := svc.sqlSvc.GetQuest(questID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Quest not found")
	}

	return svc.toQuestResponse(quest, svc.completedQuestSet(userID)), nil
}

func (svc *QuestService) GetQuestsByTopic(userID, topicID string) ([]dto.QuestResponse, error) {
	quests, err := svc.sqlSvc.GetQuestsByTopic(topicID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load quests")
	}

	completed := svc.completedQuestSet(userID)
	out := make([]dto.QuestResponse, 0, len(quests))
	for i := range quests {
		out = append(out, *svc.toQuestResponse(&quests[i], completed))
	}
	return out, nil
}

func (svc *QuestService) completedQuestSet(userID string) map[string]bool {
	set := map[string]bool{}
	progress, err := svc.sqlSvc.GetUserProgress(userID)
	if err != nil {
		return set
	}
	for _, id := range decodeIDList(progress.CompletedQuests) {
		set[id] = true
	}
	return set
}

func (svc *QuestService) toQuestResponse(quest *model.Quest, completed map[string]bool) *dto.QuestResponse {
	return &dto.QuestResponse{
		ID:            quest.ID,
		TopicID:       quest.TopicID,
		Title:         quest.Title,
		Narrative:     quest.Narrative,
		Objective:     quest.Objective,
		TheoryContent: quest.TheoryContent,
		ChallengeIDs:  decodeIDList(quest.ChallengeIDs),
		TotalXP:       quest.TotalXP,
		IsCompleted:   completed[quest.ID],
	}
}
