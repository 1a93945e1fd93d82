package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/shared"
)

func validChallenge(challengeType string, content string) *model.Challenge {
	return &model.Challenge{
		ID:            "challenge_test",
		Type:          challengeType,
		Content:       json.RawMessage(content),
		CorrectAnswer: json.RawMessage(`"answer"`),
	}
}

func TestValidateMultipleChoiceContent(t *testing.T) {
	c := validChallenge(shared.ChallengeTypeMultipleChoice,
		`{"question": "What is O(1)?", "options": ["constant", "linear"]}`)
	require.NoError(t, ValidateChallengeContent(c))

	c = validChallenge(shared.ChallengeTypeMultipleChoice,
		`{"question": "", "options": ["constant", "linear"]}`)
	assert.Error(t, ValidateChallengeContent(c))

	c = validChallenge(shared.ChallengeTypeMultipleChoice,
		`{"question": "What is O(1)?", "options": ["constant"]}`)
	assert.Error(t, ValidateChallengeContent(c))
}

func TestValidatePatternRecognitionContent(t *testing.T) {
	c := validChallenge(shared.ChallengeTypePatternRecognition,
		`{"code_snippets": ["for i := range a {}"], "patterns": ["linear_scan"]}`)
	require.NoError(t, ValidateChallengeContent(c))

	c = validChallenge(shared.ChallengeTypePatternRecognition,
		`{"code_snippets": [], "patterns": ["linear_scan"]}`)
	assert.Error(t, ValidateChallengeContent(c))
}

func TestValidateVisualBuilderContent(t *testing.T) {
	c := validChallenge(shared.ChallengeTypeVisualBuilder,
		`{"operations": ["push", "pop"], "target": {"result": "empty"}}`)
	require.NoError(t, ValidateChallengeContent(c))

	c = validChallenge(shared.ChallengeTypeVisualBuilder,
		`{"operations": [], "target": {"result": "empty"}}`)
	assert.Error(t, ValidateChallengeContent(c))
}

func TestValidateUnknownTypePassesThrough(t *testing.T) {
	c := validChallenge("code_completion", `{"anything": true}`)
	assert.NoError(t, ValidateChallengeContent(c))
}

func TestValidateRequiresCorrectAnswer(t *testing.T) {
	c := validChallenge(shared.ChallengeTypeMultipleChoice,
		`{"question": "What is O(1)?", "options": ["constant", "linear"]}`)
	c.CorrectAnswer = nil
	assert.Error(t, ValidateChallengeContent(c))
}

func TestValidateRejectsMalformedContent(t *testing.T) {
	c := validChallenge(shared.ChallengeTypeMultipleChoice, `not json`)
	assert.Error(t, ValidateChallengeContent(c))
}
