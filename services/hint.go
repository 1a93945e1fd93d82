// services/hint.go
package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ascend-learning/ascend_api/dto"
	"github.com/ascend-learning/ascend_api/shared"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// HintService generates contextual hints with Gemini. It is strictly
// best effort: when the model fails every retry, the challenge's
// pre-authored hints are served, then a canned tutor line. The
// interaction never fails because the model is down.
type HintService struct {
	appContext.DefaultService

	sqlSvc        *PostgresService
	redisSvc      *RedisService
	monitoringSvc *MonitoringService

	client *genai.Client
	model  string

	// generate is the seam tests use to stub the model call.
	generate func(ctx context.Context, prompt string) (string, error)

	maxRetries int
	baseDelay  time.Duration
}

const HINT_SVC = "hint_svc"

const fallbackHint = "Break the problem into smaller steps and think about which data structure fits each one."

const hintCacheTTL = time.Hour

func (svc HintService) Id() string {
	return HINT_SVC
}

func (svc *HintService) Configure(ctx *appContext.Context) error {
	svc.model = os.Getenv("GEMINI_MODEL")
	if svc.model == "" {
		svc.model = "gemini-2.0-flash"
	}
	svc.maxRetries = 3
	svc.baseDelay = time.Second
	return svc.DefaultService.Configure(ctx)
}

func (svc *HintService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc, _ = svc.Service(MONITORING_SVC).(*MonitoringService)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY not set, hints will fall back to static content")
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to create Gemini client, hints will fall back to static content")
		return nil
	}
	svc.client = client
	svc.generate = svc.generateWithGemini
	return nil
}

// GetHint returns a hint for the challenge, scaled to how many times
// the user has attempted it. Responses are cached per
// (challenge, attempts) pair so repeat requests don't re-query the
// model.
func (svc *HintService) GetHint(userID, challengeID string, attempts int) (*dto.HintResponse, error) {
	challenge, err := svc.sqlSvc.GetChallenge(challengeID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Challenge not found")
	}

	ctx := context.Background()
	cacheKey := fmt.Sprintf("hint:%s:%d", challengeID, attempts)

	var cached dto.HintResponse
	if err := svc.redisSvc.GetJSON(ctx, cacheKey, &cached); err == nil && cached.Hint != "" {
		return &cached, nil
	}

	resp := &dto.HintResponse{ChallengeID: challengeID}

	if svc.generate != nil {
		prompt := svc.buildPrompt(challenge.Title, challenge.Description, challenge.Type, attempts)
		hint, err := svc.withRetry(ctx, prompt)
		if err == nil {
			resp.Hint = strings.TrimSpace(hint)
			resp.Source = "generated"
		} else {
			log.WithError(err).WithField("challenge_id", challengeID).Warn("Hint generation failed after retries")
		}
	}

	if resp.Hint == "" {
		if static := svc.staticHint(challenge.Hints, attempts); static != "" {
			resp.Hint = static
			resp.Source = "static"
		} else {
			resp.Hint = fallbackHint
			resp.Source = "fallback"
		}
	}

	if err := svc.redisSvc.Set(ctx, cacheKey, resp, hintCacheTTL); err != nil {
		log.WithError(err).Debug("Failed to cache hint")
	}

	if svc.monitoringSvc != nil {
		svc.monitoringSvc.RecordHintServed(resp.Source)
	}

	return resp, nil
}

// withRetry calls the generator up to maxRetries times with doubling
// delay between attempts.
func (svc *HintService) withRetry(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	delay := svc.baseDelay
	for i := 0; i < svc.maxRetries; i++ {
		if i > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			delay *= 2
		}

		hint, err := svc.generate(ctx, prompt)
		if err == nil && hint != "" {
			return hint, nil
		}
		if err == nil {
			err = fmt.Errorf("empty model response")
		}
		lastErr = err
	}
	return "", lastErr
}

func (svc *HintService) generateWithGemini(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: 150,
	}

	result, err := svc.client.Models.GenerateContent(ctx, svc.model, contents, config)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (svc *HintService) buildPrompt(title, description, challengeType string, attempts int) string {
	var depth string
	switch {
	case attempts <= 1:
		depth = "Give a gentle nudge without revealing the approach."
	case attempts <= 3:
		depth = "Point at the key insight but do not give the answer."
	default:
		depth = "Walk through the approach step by step, stopping short of the final answer."
	}

	return fmt.Sprintf(
		"You are a data structures and algorithms tutor. A student is stuck on the %s challenge %q: %s\nThey have attempted it %d times. %s Respond with a single short hint.",
		challengeType, title, description, attempts, depth,
	)
}

// staticHint picks the pre-authored hint matching the attempt count,
// clamped to the last one.
func (svc *HintService) staticHint(raw []byte, attempts int) string {
	hints := parseHints(raw)
	if len(hints) == 0 {
		return ""
	}
	idx := attempts - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(hints) {
		idx = len(hints) - 1
	}
	return hints[idx]
}
