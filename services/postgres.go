package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ascend-learning/ascend_api/model"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresService owns the authoritative state: users, the content
// catalog and all progress records. Everything above it treats its
// in-process copies as eventually-consistent mirrors and re-reads
// after mutations.
type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		host := envDefault("DB_HOST", "localhost")
		port := envDefault("DB_PORT", "5432")
		user := envDefault("DB_USER", "postgres")
		password := envDefault("DB_PASSWORD", "postgres")
		dbname := envDefault("DB_NAME", "ascend_api")
		sslmode := envDefault("DB_SSLMODE", "disable")
		timezone := envDefault("DB_TIMEZONE", "UTC")

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			host, user, password, dbname, port, sslmode, timezone)
	}

	return ds.DefaultService.Configure(ctx)
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (ds *PostgresService) Start() (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					break
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	models := []interface{}{
		&model.User{},
		&model.Domain{},
		&model.Topic{},
		&model.Quest{},
		&model.Challenge{},
		&model.UserProgress{},
		&model.ChallengeAttempt{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	if ds.db != nil {
		if sqlDB, err := ds.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// HandleError maps storage failures onto the shared error taxonomy so
// callers can distinguish not-found from everything else.
func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest
		errorType = "FOREIGN_KEY_VIOLATION"
	default:
		if strings.Contains(err.Error(), "duplicate key value") {
			statusCode = http.StatusConflict
			errorType = "UNIQUE_CONSTRAINT"
		} else {
			statusCode = http.StatusInternalServerError
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%s: %w", errorType, err)
}

// ==================== USER METHODS ====================

func (ds *PostgresService) CreateUser(user *model.User) (*model.User, error) {
	if err := ds.db.Create(user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return user, nil
}

func (ds *PostgresService) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *PostgresService) GetUserByEmailOrUsername(emailOrUsername string) (*model.User, error) {
	var user model.User
	err := ds.db.Where("LOWER(email) = LOWER(?) OR LOWER(username) = LOWER(?)",
		emailOrUsername, emailOrUsername).First(&user).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *PostgresService) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *PostgresService) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	return ds.HandleError(ds.db.Save(user).Error)
}

// ==================== PROGRESS METHODS ====================

func (ds *PostgresService) CreateUserProgress(progress *model.UserProgress) (*model.UserProgress, error) {
	if err := ds.db.Create(progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return progress, nil
}

func (ds *PostgresService) GetUserProgress(userID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	if err := ds.db.Where("user_id = ?", userID).First(&progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &progress, nil
}

func (ds *PostgresService) UpdateUserProgress(progress *model.UserProgress) error {
	progress.UpdatedAt = time.Now()
	return ds.HandleError(ds.db.Save(progress).Error)
}

// ==================== CONTENT METHODS ====================

func (ds *PostgresService) GetDomains() ([]model.Domain, error) {
	var domains []model.Domain
	if err := ds.db.Where("is_active = ?", true).Order("unlock_level ASC").Find(&domains).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return domains, nil
}

func (ds *PostgresService) GetDomain(id string) (*model.Domain, error) {
	var domain model.Domain
	if err := ds.db.Where("id = ?", id).First(&domain).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &domain, nil
}

func (ds *PostgresService) GetTopicsByDomain(domainID string) ([]model.Topic, error) {
	var topics []model.Topic
	err := ds.db.Where("domain_id = ?", domainID).Order(`"order" ASC`).Find(&topics).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return topics, nil
}

func (ds *PostgresService) GetTopic(id string) (*model.Topic, error) {
	var topic model.Topic
	if err := ds.db.Where("id = ?", id).First(&topic).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &topic, nil
}

func (ds *PostgresService) GetQuest(id string) (*model.Quest, error) {
	var quest model.Quest
	if err := ds.db.Where("id = ?", id).First(&quest).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &quest, nil
}

func (ds *PostgresService) GetQuestsByTopic(topicID string) ([]model.Quest, error) {
	var quests []model.Quest
	if err := ds.db.Where("topic_id = ?", topicID).Find(&quests).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return quests, nil
}

func (ds *PostgresService) GetChallenge(id string) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := ds.db.Where("id = ? AND is_active = ?", id, true).First(&challenge).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &challenge, nil
}

func (ds *PostgresService) GetChallengesByTopic(topicID string) ([]model.Challenge, error) {
	var challenges []model.Challenge
	err := ds.db.Where("topic_id = ? AND is_active = ?", topicID, true).Find(&challenges).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return challenges, nil
}

func (ds *PostgresService) CountChallengesByTopic(topicID string) (int64, error) {
	var count int64
	err := ds.db.Model(&model.Challenge{}).
		Where("topic_id = ? AND is_active = ?", topicID, true).Count(&count).Error
	if err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

// ==================== ATTEMPT METHODS ====================

func (ds *PostgresService) GetAttempt(userID, challengeID string) (*model.ChallengeAttempt, error) {
	var attempt model.ChallengeAttempt
	err := ds.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&attempt).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return &attempt, nil
}

func (ds *PostgresService) CreateAttempt(attempt *model.ChallengeAttempt) error {
	return ds.HandleError(ds.db.Create(attempt).Error)
}

func (ds *PostgresService) UpdateAttempt(attempt *model.ChallengeAttempt) error {
	attempt.UpdatedAt = time.Now()
	return ds.HandleError(ds.db.Save(attempt).Error)
}

// ==================== LEADERBOARD METHODS ====================

func (ds *PostgresService) GetAllTimeLeaderboard(limit int) ([]model.UserProgress, error) {
	var progress []model.UserProgress
	if err := ds.db.Order("xp DESC").Limit(limit).Find(&progress).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return progress, nil
}

func (ds *PostgresService) GetUserLeaderboardPosition(userID string) (int, error) {
	var position int64
	err := ds.db.Raw(`
		SELECT COUNT(*) + 1
		FROM user_progresses
		WHERE xp > (SELECT xp FROM user_progresses WHERE user_id = ?)
	`, userID).Scan(&position).Error
	if err != nil {
		return 0, ds.HandleError(err)
	}
	return int(position), nil
}
