package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswersEqual_Scalars(t *testing.T) {
	assert.True(t, AnswersEqual(json.RawMessage(`"stack"`), json.RawMessage(`"stack"`)))
	assert.False(t, AnswersEqual(json.RawMessage(`"stack"`), json.RawMessage(`"queue"`)))
	assert.True(t, AnswersEqual(json.RawMessage(`2`), json.RawMessage(`2`)))
}

func TestAnswersEqual_KeyOrderIrrelevant(t *testing.T) {
	a := json.RawMessage(`{"ops":["push","pop"],"target":[1,2]}`)
	b := json.RawMessage(`{"target":[1,2],"ops":["push","pop"]}`)
	assert.True(t, AnswersEqual(a, b))
}

func TestAnswersEqual_ArrayOrderMatters(t *testing.T) {
	a := json.RawMessage(`[1,2,3]`)
	b := json.RawMessage(`[3,2,1]`)
	assert.False(t, AnswersEqual(a, b))
}

func TestAnswersEqual_DoubleEncoded(t *testing.T) {
	// Stored answers are sometimes a JSON string containing JSON.
	stored := json.RawMessage(`"{\"index\":2}"`)
	submitted := json.RawMessage(`{"index":2}`)
	assert.True(t, AnswersEqual(submitted, stored))
}

func TestNormalizeAnswer_PlainStringKept(t *testing.T) {
	got := NormalizeAnswer(json.RawMessage(`"O(n log n)"`))
	assert.Equal(t, "O(n log n)", got)
}
