package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-learning/ascend_api/model"
)

type fakeAttemptStore struct {
	attempts   map[string]*model.ChallengeAttempt
	progress   map[string]*model.UserProgress
	challenges map[string]*model.Challenge
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{
		attempts:   map[string]*model.ChallengeAttempt{},
		progress:   map[string]*model.UserProgress{},
		challenges: map[string]*model.Challenge{},
	}
}

func attemptKey(userID, challengeID string) string {
	return userID + "|" + challengeID
}

func (s *fakeAttemptStore) GetChallenge(id string) (*model.Challenge, error) {
	c, ok := s.challenges[id]
	if !ok {
		return nil, errors.New("challenge not found")
	}
	return c, nil
}

func (s *fakeAttemptStore) GetAttempt(userID, challengeID string) (*model.ChallengeAttempt, error) {
	a, ok := s.attempts[attemptKey(userID, challengeID)]
	if !ok {
		return nil, errors.New("attempt not found")
	}
	copied := *a
	return &copied, nil
}

func (s *fakeAttemptStore) CreateAttempt(attempt *model.ChallengeAttempt) error {
	copied := *attempt
	s.attempts[attemptKey(attempt.UserID, attempt.ChallengeID)] = &copied
	return nil
}

func (s *fakeAttemptStore) UpdateAttempt(attempt *model.ChallengeAttempt) error {
	copied := *attempt
	s.attempts[attemptKey(attempt.UserID, attempt.ChallengeID)] = &copied
	return nil
}

func (s *fakeAttemptStore) GetUserProgress(userID string) (*model.UserProgress, error) {
	p, ok := s.progress[userID]
	if !ok {
		return nil, errors.New("progress not found")
	}
	return p, nil
}

func (s *fakeAttemptStore) UpdateUserProgress(progress *model.UserProgress) error {
	s.progress[progress.UserID] = progress
	return nil
}

func emptyProgress(userID string) *model.UserProgress {
	return &model.UserProgress{
		UserID:              userID,
		Level:               1,
		CompletedChallenges: json.RawMessage("[]"),
		CompletedQuests:     json.RawMessage("[]"),
	}
}

func TestTrackAttemptFailedRetryResetsOutcome(t *testing.T) {
	store := newFakeAttemptStore()
	store.progress["u1"] = emptyProgress("u1")
	svc := &ProgressService{sqlSvc: store}

	_, newlyCompleted, err := svc.TrackAttempt("u1", "c1", "t1", true, 50)
	require.NoError(t, err)
	assert.True(t, newlyCompleted)

	resp, newlyCompleted, err := svc.TrackAttempt("u1", "c1", "t1", false, 0)
	require.NoError(t, err)
	assert.False(t, newlyCompleted)
	assert.False(t, resp.Completed)
	assert.Equal(t, 0, resp.Score)
	assert.Equal(t, 2, resp.Attempts)
	assert.Nil(t, resp.CompletedAt)

	stored := store.attempts[attemptKey("u1", "c1")]
	require.NotNil(t, stored)
	assert.False(t, stored.Completed)
	assert.Equal(t, 0, stored.Score)
	assert.Nil(t, stored.CompletedAt)

	// The earned completion survives on the progress record; only the
	// attempt mirrors the latest submission.
	assert.Contains(t, decodeIDList(store.progress["u1"].CompletedChallenges), "c1")
}

func TestTrackAttemptCompletesAfterFailedTries(t *testing.T) {
	store := newFakeAttemptStore()
	store.progress["u1"] = emptyProgress("u1")
	svc := &ProgressService{sqlSvc: store}

	resp, newlyCompleted, err := svc.TrackAttempt("u1", "c1", "t1", false, 0)
	require.NoError(t, err)
	assert.False(t, newlyCompleted)
	assert.False(t, resp.Completed)
	assert.Equal(t, 1, resp.Attempts)
	assert.Nil(t, resp.CompletedAt)

	resp, newlyCompleted, err = svc.TrackAttempt("u1", "c1", "t1", true, 50)
	require.NoError(t, err)
	assert.True(t, newlyCompleted)
	assert.True(t, resp.Completed)
	assert.Equal(t, 50, resp.Score)
	assert.Equal(t, 2, resp.Attempts)
	require.NotNil(t, resp.CompletedAt)
}

func TestTrackAttemptRepeatSuccessNotNewlyCompleted(t *testing.T) {
	store := newFakeAttemptStore()
	store.progress["u1"] = emptyProgress("u1")
	svc := &ProgressService{sqlSvc: store}

	_, newlyCompleted, err := svc.TrackAttempt("u1", "c1", "t1", true, 50)
	require.NoError(t, err)
	assert.True(t, newlyCompleted)

	_, newlyCompleted, err = svc.TrackAttempt("u1", "c1", "t1", true, 50)
	require.NoError(t, err)
	assert.False(t, newlyCompleted)
}
