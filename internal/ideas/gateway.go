// internal/ideas/gateway.go
package ideas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/logic25/beacon-content-engine/internal/common/config"
	"github.com/logic25/beacon-content-engine/internal/common/errors"
	commonhttp "github.com/logic25/beacon-content-engine/internal/common/http"
	"github.com/logic25/beacon-content-engine/internal/common/logger"
	"github.com/logic25/beacon-content-engine/internal/common/metrics"
	"github.com/logic25/beacon-content-engine/internal/common/validation"
)

// Gateway performs the one chat-completions call per generation. The tool
// call is forced, so a well-behaved upstream always answers through
// return_content_ideas; anything else is a malformed response.
type Gateway struct {
	cfg    config.GatewayConfig
	client *commonhttp.Client
	logger logger.Logger
}

// NewGateway builds a gateway with the configured request timeout.
func NewGateway(cfg config.GatewayConfig, log logger.Logger) *Gateway {
	return &Gateway{
		cfg:    cfg,
		client: commonhttp.NewClient(config.GetDuration(cfg.Timeout)),
		logger: log.With(map[string]interface{}{
			"component": "idea-gateway",
		}),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// Invoke sends the prompts upstream and returns the decoded, schema-valid
// tool-call arguments. No retries: every failure is terminal for the
// request.
func (g *Gateway) Invoke(ctx context.Context, systemPrompt, userPrompt string) (map[string]interface{}, error) {
	requestBody := map[string]interface{}{
		"model": g.cfg.Model,
		"messages": []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		"tools": []map[string]interface{}{
			{
				"type": "function",
				"function": map[string]interface{}{
					"name":        ToolName,
					"description": ToolDescription,
					"parameters":  IdeasToolSchema,
				},
			},
		},
		"tool_choice": map[string]interface{}{
			"type":     "function",
			"function": map[string]interface{}{"name": ToolName},
		},
	}
	if g.cfg.Temperature > 0 {
		requestBody["temperature"] = g.cfg.Temperature
	}

	body, _ := json.Marshal(requestBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.ChatCompletionsURL(), bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.NewUpstreamError(0, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewUpstreamError(0, err.Error())
	}
	defer resp.Body.Close()

	metrics.GatewayResponsesTotal.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, errors.NewRateLimitedError()
		case http.StatusPaymentRequired:
			return nil, errors.NewQuotaExhaustedError()
		default:
			errorText, _ := io.ReadAll(resp.Body)
			g.logger.Error("AI gateway error", map[string]interface{}{
				"status": resp.StatusCode,
				"body":   string(errorText),
			})
			return nil, errors.NewUpstreamError(resp.StatusCode, string(errorText))
		}
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, errors.NewMalformedUpstreamResponseError(fmt.Sprintf("decode response: %v", err))
	}

	if len(chat.Choices) == 0 || len(chat.Choices[0].Message.ToolCalls) == 0 ||
		chat.Choices[0].Message.ToolCalls[0].Function.Arguments == "" {
		return nil, errors.NewMalformedUpstreamResponseError("missing tool call payload")
	}

	var parsed map[string]interface{}
	arguments := chat.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(arguments), &parsed); err != nil {
		return nil, errors.NewMalformedUpstreamResponseError(fmt.Sprintf("parse tool arguments: %v", err))
	}

	if err := validation.ValidateAgainstSchema(IdeasToolSchema, parsed); err != nil {
		return nil, errors.NewMalformedUpstreamResponseError(err.Error())
	}

	return parsed, nil
}
