package shared

const (
	UserID = "user_id"

	ChallengeTypeMultipleChoice     = "multiple_choice"
	ChallengeTypePatternRecognition = "pattern_recognition"
	ChallengeTypeVisualBuilder      = "visual_builder"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)
