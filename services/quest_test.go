package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/model"
)

type fakeQuestStore struct {
	progress map[string]*model.UserProgress
	quests   map[string]*model.Quest
}

func (s *fakeQuestStore) GetUserProgress(userID string) (*model.UserProgress, error) {
	p, ok := s.progress[userID]
	if !ok {
		return nil, errors.New("progress not found")
	}
	return p, nil
}

func (s *fakeQuestStore) UpdateUserProgress(progress *model.UserProgress) error {
	s.progress[progress.UserID] = progress
	return nil
}

func (s *fakeQuestStore) GetQuest(id string) (*model.Quest, error) {
	q, ok := s.quests[id]
	if !ok {
		return nil, errors.New("quest not found")
	}
	return q, nil
}

func (s *fakeQuestStore) GetQuestsByTopic(topicID string) ([]model.Quest, error) {
	return nil, nil
}

type countingAwarder struct {
	calls   int
	amounts []int
}

func (a *countingAwarder) AwardXP(userID string, amount int) (*dto.XPAwardResponse, error) {
	a.calls++
	a.amounts = append(a.amounts, amount)
	return &dto.XPAwardResponse{}, nil
}

func TestCheckAndCompleteQuestAwardsBonusOnce(t *testing.T) {
	store := &fakeQuestStore{
		progress: map[string]*model.UserProgress{
			"u1": {
				UserID:              "u1",
				CompletedChallenges: json.RawMessage(`["c1","c2"]`),
				CompletedQuests:     json.RawMessage("[]"),
			},
		},
		quests: map[string]*model.Quest{
			"q1": {
				ID:           "q1",
				TopicID:      "t1",
				Title:        "Stack Initiate",
				ChallengeIDs: json.RawMessage(`["c1","c2"]`),
				TotalXP:      100,
			},
		},
	}
	awarder := &countingAwarder{}
	svc := &QuestService{sqlSvc: store, userSvc: awarder}

	completion, err := svc.CheckAndCompleteQuest("u1", "q1")
	require.NoError(t, err)
	require.NotNil(t, completion)
	assert.Equal(t, "q1", completion.QuestID)
	assert.Equal(t, QuestCompletionBonusXP, completion.BonusXP)
	require.Equal(t, 1, awarder.calls)
	assert.Equal(t, QuestCompletionBonusXP, awarder.amounts[0])

	// Re-evaluating an already completed quest is a no-op: no payload,
	// no second bonus.
	completion, err = svc.CheckAndCompleteQuest("u1", "q1")
	require.NoError(t, err)
	assert.Nil(t, completion)
	assert.Equal(t, 1, awarder.calls)
}

func TestCheckAndCompleteQuestIncompleteAwardsNothing(t *testing.T) {
	store := &fakeQuestStore{
		progress: map[string]*model.UserProgress{
			"u1": {
				UserID:              "u1",
				CompletedChallenges: json.RawMessage(`["c1"]`),
				CompletedQuests:     json.RawMessage("[]"),
			},
		},
		quests: map[string]*model.Quest{
			"q1": {
				ID:           "q1",
				ChallengeIDs: json.RawMessage(`["c1","c2"]`),
			},
		},
	}
	awarder := &countingAwarder{}
	svc := &QuestService{sqlSvc: store, userSvc: awarder}

	completion, err := svc.CheckAndCompleteQuest("u1", "q1")
	require.NoError(t, err)
	assert.Nil(t, completion)
	assert.Equal(t, 0, awarder.calls)
	assert.Empty(t, decodeIDList(store.progress["u1"].CompletedQuests))
}
