// internal/ideas/service.go
package ideas

import (
	"context"
	"time"

	"github.com/logic25/beacon-content-engine/internal/common/config"
	"github.com/logic25/beacon-content-engine/internal/common/errors"
	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/common/metrics"
)

// Service turns a context snapshot into content ideas via the upstream
// gateway. It is stateless: the caller owns the snapshot and the result.
type Service struct {
	cfg     config.GatewayConfig
	gateway *Gateway
	logger  logger.Logger
}

// NewService wires a generation service against the configured gateway.
func NewService(cfg config.GatewayConfig, log logger.Logger) *Service {
	return &Service{
		cfg:     cfg,
		gateway: NewGateway(cfg, log),
		logger: log.With(map[string]interface{}{
			"component": "idea-service",
		}),
	}
}

// Generate builds the prompts from the request and forwards them upstream.
// A missing gateway credential fails before any network call. The returned
// map is the schema-validated tool-call payload, passed through untouched.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) (map[string]interface{}, error) {
	if s.cfg.APIKey == "" {
		metrics.IdeaGenerationsTotal.WithLabelValues("configuration_error").Inc()
		return nil, errors.NewConfigurationError("gateway API key is not set")
	}

	start := time.Now()
	userPrompt := BuildUserPrompt(req)

	s.logger.Info("generating content ideas", map[string]interface{}{
		"conversations":      len(req.Conversations),
		"documents":          len(req.Documents),
		"corrections":        len(req.Corrections),
		"mostAskedQuestions": len(req.MostAskedQuestions),
	})

	payload, err := s.gateway.Invoke(ctx, SystemPrompt, userPrompt)
	metrics.IdeaGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.IdeaGenerationsTotal.WithLabelValues("failure").Inc()
		s.logger.WithError(err).Error("idea generation failed", map[string]interface{}{
			"durationMs": time.Since(start).Milliseconds(),
		})
		return nil, err
	}

	metrics.IdeaGenerationsTotal.WithLabelValues("success").Inc()
	s.logger.Info("idea generation completed", map[string]interface{}{
		"durationMs": time.Since(start).Milliseconds(),
	})
	return payload, nil
}
