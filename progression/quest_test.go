package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestComplete(t *testing.T) {
	required := []string{"a", "b", "c"}

	assert.False(t, QuestComplete(required, []string{"a", "b"}))
	assert.True(t, QuestComplete(required, []string{"c", "a", "b"}))
	assert.True(t, QuestComplete(required, []string{"b", "x", "a", "c", "y"}))
	assert.False(t, QuestComplete(required, nil))
}

func TestQuestComplete_EmptyQuest(t *testing.T) {
	// A quest with no required challenges is vacuously complete.
	assert.True(t, QuestComplete(nil, nil))
	assert.True(t, QuestComplete([]string{}, []string{"a"}))
}

func TestUnionChallenge(t *testing.T) {
	set, changed := UnionChallenge([]string{"a"}, "b")
	assert.True(t, changed)
	assert.Equal(t, []string{"a", "b"}, set)

	set, changed = UnionChallenge(set, "b")
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "b"}, set)
}
