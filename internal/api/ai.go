package api

import (
	"context"
	"encoding/json"
	"strings"

	"profix/internal/models"

	"github.com/rs/zerolog"
)

// IntentUnknown is what the classifier reports when it cannot decide.
const IntentUnknown = "unknown"

// SendAIChat forwards one message to the backend's assistant and returns its
// answer.
func (c *Client) SendAIChat(ctx context.Context, req models.AIChatRequest) (string, error) {
	if req.UserType == "" {
		req.UserType = models.RoleUser
	}
	var reply string
	env, err := c.post(ctx, RouteAIChat, req, "response")
	if err != nil {
		return "", err
	}
	if err := env.decode(RouteAIChat, "response", &reply); err != nil {
		return "", err
	}
	return reply, nil
}

// PredictIntent asks the backend classifier for a service label. The route
// reports {status, intent}; any status other than "success" is a business
// failure.
func (c *Client) PredictIntent(ctx context.Context, text string) (string, error) {
	env, err := c.postWith(ctx, RoutePredictIntent, models.PredictIntentRequest{Text: text}, keyedEnvelope("status"))
	if err != nil {
		return "", err
	}
	var status string
	if err := json.Unmarshal(env["status"], &status); err != nil {
		return "", parseError(RoutePredictIntent, err)
	}
	if status != "success" {
		msg := env.message()
		if msg == "" {
			msg = "intent classification failed"
		}
		return "", businessError(RoutePredictIntent, msg)
	}
	if err := env.require(RoutePredictIntent, "intent"); err != nil {
		return "", err
	}
	var intent string
	if err := env.decode(RoutePredictIntent, "intent", &intent); err != nil {
		return "", err
	}
	return strings.TrimSpace(intent), nil
}

type intentPredictor interface {
	PredictIntent(ctx context.Context, text string) (string, error)
}

// IntentClassifier wraps PredictIntent for callers that only want a label.
type IntentClassifier struct {
	predictor intentPredictor
	logger    *zerolog.Logger
}

func NewIntentClassifier(p intentPredictor, logger *zerolog.Logger) *IntentClassifier {
	return &IntentClassifier{predictor: p, logger: logger}
}

// Classify never fails: any error is logged and reported as IntentUnknown.
func (ic *IntentClassifier) Classify(ctx context.Context, text string) string {
	intent, err := ic.predictor.PredictIntent(ctx, text)
	if err != nil {
		if ic.logger != nil {
			ic.logger.Warn().Err(err).Msg("intent classification failed")
		}
		return IntentUnknown
	}
	if intent == "" {
		return IntentUnknown
	}
	return intent
}
