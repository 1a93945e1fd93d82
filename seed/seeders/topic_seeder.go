package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ascend-learning/ascend_api/model"
)

// TopicSeeder handles seeding topics inside the domains
type TopicSeeder struct {
	db *gorm.DB
}

func NewTopicSeeder(db *gorm.DB) *TopicSeeder {
	return &TopicSeeder{db: db}
}

func (s *TopicSeeder) SeedTopics() error {
	for _, topic := range s.getTopics() {
		var existing model.Topic
		if err := s.db.Where("id = ?", topic.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&topic).Error; err != nil {
					log.Printf("Error creating topic %s: %v", topic.Name, err)
					return err
				}
				log.Printf("Created topic: %s", topic.Name)
			} else {
				log.Printf("Error checking topic %s: %v", topic.Name, err)
				return err
			}
		} else {
			log.Printf("Topic %s already exists, skipping", topic.Name)
		}
	}

	log.Println("Topic seeding completed successfully")
	return nil
}

func (s *TopicSeeder) getTopics() []model.Topic {
	now := time.Now()

	return []model.Topic{
		{
			ID:            "topic_array_basics",
			DomainID:      "domain_arrays_strings",
			Name:          "Array Fundamentals",
			Description:   "Indexing, traversal and in-place updates.",
			Order:         1,
			TheoryContent: "An array stores elements contiguously, giving constant-time access by index. Most array problems reduce to choosing the right traversal order.",
			XPReward:      50,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:                "topic_two_pointers",
			DomainID:          "domain_arrays_strings",
			Name:              "Two Pointers",
			Description:       "Converging and parallel pointer patterns.",
			Order:             2,
			UnlockRequirement: "topic_array_basics",
			TheoryContent:     "Two pointers turn nested scans into a single pass by moving indices from both ends or at different speeds.",
			XPReward:          75,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:            "topic_stack_basics",
			DomainID:      "domain_stacks_queues",
			Name:          "Stack Fundamentals",
			Description:   "Push, pop and LIFO thinking.",
			Order:         1,
			TheoryContent: "A stack processes items last-in first-out. Matching, undo and nesting problems map onto it directly.",
			XPReward:      50,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:                "topic_queue_basics",
			DomainID:          "domain_stacks_queues",
			Name:              "Queue Fundamentals",
			Description:       "FIFO processing and breadth-first order.",
			Order:             2,
			UnlockRequirement: "topic_stack_basics",
			TheoryContent:     "A queue processes items first-in first-out, which is exactly the visiting order of breadth-first search.",
			XPReward:          50,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:            "topic_tree_traversal",
			DomainID:      "domain_trees_graphs",
			Name:          "Tree Traversal",
			Description:   "Preorder, inorder, postorder and level order.",
			Order:         1,
			TheoryContent: "Every tree algorithm starts from a traversal. Depth-first orders come from recursion; level order comes from a queue.",
			XPReward:      100,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
