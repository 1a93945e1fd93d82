package seeders

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in dependency order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	domainSeeder := NewDomainSeeder(s.db)
	if err := domainSeeder.SeedDomains(); err != nil {
		log.Printf("Domain seeding failed: %v", err)
		return err
	}

	topicSeeder := NewTopicSeeder(s.db)
	if err := topicSeeder.SeedTopics(); err != nil {
		log.Printf("Topic seeding failed: %v", err)
		return err
	}

	challengeSeeder := NewChallengeSeeder(s.db)
	if err := challengeSeeder.SeedChallenges(); err != nil {
		log.Printf("Challenge seeding failed: %v", err)
		return err
	}
	if err := challengeSeeder.SeedQuests(); err != nil {
		log.Printf("Quest seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedDomainsOnly() error {
	return NewDomainSeeder(s.db).SeedDomains()
}

func (s *MainSeeder) SeedTopicsOnly() error {
	return NewTopicSeeder(s.db).SeedTopics()
}

func (s *MainSeeder) SeedChallengesOnly() error {
	challengeSeeder := NewChallengeSeeder(s.db)
	if err := challengeSeeder.SeedChallenges(); err != nil {
		return err
	}
	return challengeSeeder.SeedQuests()
}

func jsonArray(items []string) json.RawMessage {
	b, _ := json.Marshal(items)
	return b
}
