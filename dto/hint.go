package dto

type HintRequest struct {
	Attempts int `json:"attempts" validate:"min=0"`
}

func (r HintRequest) Validate() error {
	return GetValidator().Struct(r)
}

type HintResponse struct {
	ChallengeID string `json:"challenge_id"`
	Hint        string `json:"hint"`
	Source      string `json:"source"` // generated, static, fallback
}
