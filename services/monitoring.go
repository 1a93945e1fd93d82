// services/monitoring.go
package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	MONITORING_SVC          = "monitoring_svc"
	SERVICE_NAME            = "ascend_api"
	DEFAULT_PROMETHEUS_PORT = 2112
)

// HTTP metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Progression metrics
var (
	xpAwardsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "xp_awards_total",
			Help: "Total XP awards issued",
		},
	)

	xpAwardedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "xp_awarded_total",
			Help: "Total XP points awarded",
		},
	)

	levelUpsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "level_ups_total",
			Help: "Total level-up events",
		},
	)

	questsCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quests_completed_total",
			Help: "Total quest completions",
		},
	)

	answersSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answers_submitted_total",
			Help: "Total answer submissions by outcome",
		},
		[]string{"outcome"},
	)

	hintsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hints_served_total",
			Help: "Total hints served by source",
		},
		[]string{"source"},
	)
)

// MonitoringService exposes prometheus metrics on its own port,
// separate from the API server.
type MonitoringService struct {
	appContext.DefaultService

	port     int
	register *prometheus.Registry
	server   *fiber.App
}

func (svc *MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Start() error {
	portStr := os.Getenv("PROMETHEUS_PORT")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = DEFAULT_PROMETHEUS_PORT
	}
	svc.port = port

	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reg.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		xpAwardsTotal,
		xpAwardedTotal,
		levelUpsTotal,
		questsCompletedTotal,
		answersSubmittedTotal,
		hintsServedTotal,
	)

	svc.register = reg

	config := fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		},
	}

	svc.server = fiber.New(config)
	svc.server.Use(recover.New())

	svc.server.Get("/metrics", svc.metricsHandler)
	svc.server.Get("/health", svc.healthHandler)

	log.Info().Int("port", svc.port).Msg("Prometheus metrics server started")
	return svc.server.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *MonitoringService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

func (svc *MonitoringService) metricsHandler(c *fiber.Ctx) error {
	handler := promhttp.HandlerFor(svc.register, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(handler)(c)
}

func (svc *MonitoringService) healthHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   SERVICE_NAME,
		"timestamp": time.Now().Unix(),
	})
}

// RecordXPAward counts one award and the points it carried.
func (svc *MonitoringService) RecordXPAward(amount int, leveledUp bool) {
	xpAwardsTotal.Inc()
	xpAwardedTotal.Add(float64(amount))
	if leveledUp {
		levelUpsTotal.Inc()
	}
}

func (svc *MonitoringService) RecordQuestCompletion() {
	questsCompletedTotal.Inc()
}

func (svc *MonitoringService) RecordAnswerSubmission(correct bool) {
	outcome := "incorrect"
	if correct {
		outcome = "correct"
	}
	answersSubmittedTotal.WithLabelValues(outcome).Inc()
}

func (svc *MonitoringService) RecordHintServed(source string) {
	hintsServedTotal.WithLabelValues(source).Inc()
}

// MonitoringMiddleware records request counts and latency for the API
// server's routes.
func MonitoringMiddleware(monitoringSvc *MonitoringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		endpoint := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
		httpRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(time.Since(start).Seconds())

		return err
	}
}
