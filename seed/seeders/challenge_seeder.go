package seeders

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/services"
	"github.com/ascend-learning/ascend_api/shared"
)

// ChallengeSeeder handles seeding challenges and the quests bundling
// them
type ChallengeSeeder struct {
	db *gorm.DB
}

func NewChallengeSeeder(db *gorm.DB) *ChallengeSeeder {
	return &ChallengeSeeder{db: db}
}

func (s *ChallengeSeeder) SeedChallenges() error {
	for _, challenge := range s.getChallenges() {
		if err := services.ValidateChallengeContent(&challenge); err != nil {
			log.Printf("Invalid challenge %s: %v", challenge.ID, err)
			return err
		}

		var existing model.Challenge
		if err := s.db.Where("id = ?", challenge.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&challenge).Error; err != nil {
					log.Printf("Error creating challenge %s: %v", challenge.Title, err)
					return err
				}
				log.Printf("Created challenge: %s", challenge.Title)
			} else {
				log.Printf("Error checking challenge %s: %v", challenge.Title, err)
				return err
			}
		} else {
			log.Printf("Challenge %s already exists, skipping", challenge.Title)
		}
	}

	log.Println("Challenge seeding completed successfully")
	return nil
}

func (s *ChallengeSeeder) SeedQuests() error {
	for _, quest := range s.getQuests() {
		var existing model.Quest
		if err := s.db.Where("id = ?", quest.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&quest).Error; err != nil {
					log.Printf("Error creating quest %s: %v", quest.Title, err)
					return err
				}
				log.Printf("Created quest: %s", quest.Title)
			} else {
				log.Printf("Error checking quest %s: %v", quest.Title, err)
				return err
			}
		} else {
			log.Printf("Quest %s already exists, skipping", quest.Title)
		}
	}

	log.Println("Quest seeding completed successfully")
	return nil
}

func (s *ChallengeSeeder) getChallenges() []model.Challenge {
	now := time.Now()

	return []model.Challenge{
		{
			ID:          "challenge_array_access",
			TopicID:     "topic_array_basics",
			QuestID:     "quest_array_apprentice",
			Title:       "Constant Time Access",
			Description: "What is the time complexity of reading arr[i] in an array of n elements?",
			Type:        shared.ChallengeTypeMultipleChoice,
			Difficulty:  shared.DifficultyEasy,
			Content: json.RawMessage(`{
				"question": "What is the time complexity of reading arr[i] in an array of n elements?",
				"options": ["O(1)", "O(log n)", "O(n)", "O(n log n)"]
			}`),
			CorrectAnswer: json.RawMessage(`"O(1)"`),
			Explanation:   "Arrays store elements contiguously, so the address of arr[i] is computed directly from the base address and the index.",
			XPReward:      50,
			Hints: jsonArray([]string{
				"Think about how the memory address of an element is found.",
				"No traversal is needed; the offset is base + i * elementSize.",
			}),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "challenge_reverse_array",
			TopicID:     "topic_two_pointers",
			QuestID:     "quest_array_apprentice",
			Title:       "Reverse In Place",
			Description: "Identify the two-pointer pattern used to reverse an array without extra space.",
			Type:        shared.ChallengeTypePatternRecognition,
			Difficulty:  shared.DifficultyEasy,
			Content: json.RawMessage(`{
				"code_snippets": ["left, right = 0, len(a)-1\nwhile left < right:\n    a[left], a[right] = a[right], a[left]\n    left += 1\n    right -= 1"],
				"patterns": ["converging_pointers", "sliding_window", "fast_slow_pointers"]
			}`),
			CorrectAnswer: json.RawMessage(`"converging_pointers"`),
			Explanation:   "The indices start at opposite ends and move toward each other, swapping as they go.",
			XPReward:      75,
			Hints: jsonArray([]string{
				"Watch where the two indices start and how they move.",
				"They begin at opposite ends and meet in the middle.",
			}),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "challenge_balanced_brackets",
			TopicID:     "topic_stack_basics",
			QuestID:     "quest_stack_initiate",
			Title:       "Balanced Brackets",
			Description: "Build the sequence of stack operations that checks whether \"([])\" is balanced.",
			Type:        shared.ChallengeTypeVisualBuilder,
			Difficulty:  shared.DifficultyMedium,
			Content: json.RawMessage(`{
				"operations": ["push (", "push [", "pop ]", "pop )"],
				"target": {"input": "([])", "result": "balanced"}
			}`),
			CorrectAnswer: json.RawMessage(`["push (", "push [", "pop ]", "pop )"]`),
			Explanation:   "Each opener is pushed; each closer must match and pop the most recent opener. An empty stack at the end means balanced.",
			XPReward:      100,
			Hints: jsonArray([]string{
				"Openers go on the stack, closers take something off.",
				"A closer is only valid if it matches the opener on top of the stack.",
				"Push (, push [, then ] pops [, then ) pops (.",
			}),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "challenge_bfs_structure",
			TopicID:     "topic_tree_traversal",
			Title:       "Level Order Machinery",
			Description: "Which data structure drives a level-order (breadth-first) tree traversal?",
			Type:        shared.ChallengeTypeMultipleChoice,
			Difficulty:  shared.DifficultyEasy,
			Content: json.RawMessage(`{
				"question": "Which data structure drives a level-order (breadth-first) tree traversal?",
				"options": ["Stack", "Queue", "Heap", "Hash map"]
			}`),
			CorrectAnswer: json.RawMessage(`"Queue"`),
			Explanation:   "BFS visits nodes in arrival order, which is exactly what a FIFO queue provides.",
			XPReward:      50,
			Hints: jsonArray([]string{
				"Think about the order in which discovered nodes should be visited.",
			}),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (s *ChallengeSeeder) getQuests() []model.Quest {
	now := time.Now()

	return []model.Quest{
		{
			ID:            "quest_array_apprentice",
			TopicID:       "topic_array_basics",
			Title:         "Array Apprentice",
			Narrative:     "Every ascent starts on flat ground. Master the humble array before the towers above.",
			Objective:     "Complete the foundational array challenges.",
			TheoryContent: json.RawMessage(`{"summary": "Arrays are the base layer of almost every other structure."}`),
			ChallengeIDs:  jsonArray([]string{"challenge_array_access", "challenge_reverse_array"}),
			TotalXP:       125,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "quest_stack_initiate",
			TopicID:       "topic_stack_basics",
			Title:         "Stack Initiate",
			Narrative:     "The gatekeeper only answers questions asked in reverse. Learn to think last-in, first-out.",
			Objective:     "Complete the stack challenges.",
			TheoryContent: json.RawMessage(`{"summary": "Stacks model nesting and undo. Matching problems collapse onto them."}`),
			ChallengeIDs:  jsonArray([]string{"challenge_balanced_brackets"}),
			TotalXP:       100,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
