package shared

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
)

// NormalizeAnswer decodes an opaque answer payload for comparison.
// Some stored answers are double-encoded (a JSON string whose content
// is itself JSON); those are unwrapped one level, matching how clients
// submit them. Payloads that fail to decode compare by raw bytes.
func NormalizeAnswer(raw json.RawMessage) interface{} {
	var v interface{}
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}

	if s, ok := v.(string); ok {
		trimmed := strings.TrimSpace(s)
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			var inner interface{}
			if err := sonic.Unmarshal([]byte(trimmed), &inner); err == nil {
				return inner
			}
		}
		return s
	}

	return v
}

// AnswersEqual reports whether a submitted answer matches the stored
// correct answer after both sides are normalized. Comparison is deep
// structural equality, so object key order never matters.
func AnswersEqual(submitted, correct json.RawMessage) bool {
	return reflect.DeepEqual(NormalizeAnswer(submitted), NormalizeAnswer(correct))
}
