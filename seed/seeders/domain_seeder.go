package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ascend-learning/ascend_api/model"
	"github.com/ascend-learning/ascend_api/progression"
)

// DomainSeeder handles seeding the top-level content domains
type DomainSeeder struct {
	db *gorm.DB
}

func NewDomainSeeder(db *gorm.DB) *DomainSeeder {
	return &DomainSeeder{db: db}
}

// SeedDomains inserts the core DSA domains, skipping existing rows
func (s *DomainSeeder) SeedDomains() error {
	for _, domain := range s.getDomains() {
		var existing model.Domain
		if err := s.db.Where("id = ?", domain.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&domain).Error; err != nil {
					log.Printf("Error creating domain %s: %v", domain.Name, err)
					return err
				}
				log.Printf("Created domain: %s", domain.Name)
			} else {
				log.Printf("Error checking domain %s: %v", domain.Name, err)
				return err
			}
		} else {
			log.Printf("Domain %s already exists, skipping", domain.Name)
		}
	}

	log.Println("Domain seeding completed successfully")
	return nil
}

func (s *DomainSeeder) getDomains() []model.Domain {
	now := time.Now()

	return []model.Domain{
		{
			ID:          "domain_arrays_strings",
			Name:        "Arrays & Strings",
			Description: "Linear data structures: traversal, two pointers, sliding windows and in-place manipulation.",
			Icon:        "grid",
			Rank:        progression.RankF,
			UnlockLevel: progression.RequiredLevelForRank(progression.RankF),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "domain_stacks_queues",
			Name:        "Stacks & Queues",
			Description: "LIFO and FIFO structures, monotonic stacks and queue-based simulation.",
			Icon:        "layers",
			Rank:        progression.RankE,
			UnlockLevel: progression.RequiredLevelForRank(progression.RankE),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "domain_linked_lists",
			Name:        "Linked Lists",
			Description: "Pointer manipulation, fast and slow pointers, reversal and cycle detection.",
			Icon:        "link",
			Rank:        progression.RankE,
			UnlockLevel: progression.RequiredLevelForRank(progression.RankE),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "domain_trees_graphs",
			Name:        "Trees & Graphs",
			Description: "Traversals, recursion, BFS/DFS and shortest paths.",
			Icon:        "git-branch",
			Rank:        progression.RankD,
			UnlockLevel: progression.RequiredLevelForRank(progression.RankD),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "domain_dynamic_programming",
			Name:        "Dynamic Programming",
			Description: "Memoization, tabulation and classic optimization problems.",
			Icon:        "trending-up",
			Rank:        progression.RankC,
			UnlockLevel: progression.RequiredLevelForRank(progression.RankC),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "domain_system_design",
			Name:        "System Design",
			Description: "Scalability, caching, sharding and designing real services.",
			Icon:        "server",
			Rank:        progression.RankB,
			UnlockLevel: progression.RequiredLevelForRank(progression.RankB),
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
