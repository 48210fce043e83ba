package api

import (
	"context"
	"fmt"
	"strings"

	"profix/internal/config"
	"profix/internal/models"

	"github.com/rs/zerolog"
)

// ChatClient talks to the separate chat-reply service, which has one route
// taking {message} and answering {reply}.
type ChatClient struct {
	c *Client
}

func NewChatClient(cfg config.BackendConfig, logger *zerolog.Logger) *ChatClient {
	return &ChatClient{c: newClient(cfg.ChatURL, cfg, logger, "chat")}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Reply returns the service's trimmed reply text.
func (cc *ChatClient) Reply(ctx context.Context, message string) (string, error) {
	env, err := cc.c.postWith(ctx, RouteChat, chatRequest{Message: message}, keyedEnvelope("reply"))
	if err != nil {
		return "", err
	}
	var reply string
	if err := env.decode(RouteChat, "reply", &reply); err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// ServiceCategory is a bookable service the chatbot can route to.
type ServiceCategory struct {
	ID   models.ID
	Name string
}

// Routing is what the chat screen does with a reply: show Text and, when
// Service is set, open that category's provider list.
type Routing struct {
	Text    string
	Service *ServiceCategory
}

const (
	outOfScopeMarker = "Profix AI services only"
	outOfScopeText   = "I am sorry, but I only know about home services. Try asking for a 'Cleaner' or 'Electrician'."
	// ChatGreeting opens every chat session.
	ChatGreeting = "Hi! I'm ProFix AI. Ask me for a Cleaner, Electrician, or Mechanic."
	// ChatConnectionError replaces the reply when the chat service is unreachable.
	ChatConnectionError = "Connection error. Please check your internet."
)

// ServiceRouter maps chat replies onto service categories.
type ServiceRouter struct {
	services map[string]ServiceCategory
}

// DefaultServiceCategories is the category table the chat service is trained on.
func DefaultServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		{ID: 1, Name: "Cleaner"},
		{ID: 2, Name: "Electrician"},
		{ID: 3, Name: "Painter"},
		{ID: 4, Name: "Salon"},
		{ID: 5, Name: "Carpenter"},
		{ID: 6, Name: "Mechanic"},
	}
}

func NewServiceRouter(categories []ServiceCategory) *ServiceRouter {
	m := make(map[string]ServiceCategory, len(categories))
	for _, s := range categories {
		m[s.Name] = s
	}
	return &ServiceRouter{services: m}
}

// Route matches the reply exactly against a category name. Out-of-scope
// replies get the fixed apology; anything else is shown as-is.
func (r *ServiceRouter) Route(reply string) Routing {
	reply = strings.TrimSpace(reply)
	if s, ok := r.services[reply]; ok {
		return Routing{
			Text:    fmt.Sprintf("I understood you need a %s. Redirecting you to providers...", s.Name),
			Service: &s,
		}
	}
	if strings.Contains(strings.ToLower(reply), strings.ToLower(outOfScopeMarker)) {
		return Routing{Text: outOfScopeText}
	}
	return Routing{Text: reply}
}
