package screens

import (
	"context"
	"strings"

	"profix/internal/api"
	"profix/internal/models"
	"profix/internal/session"
)

const (
	ProviderChatGreeting = "Hello! I'm ProFIX AI Assistant for service providers. I can help you with tips for getting more bookings, pricing strategies, customer service best practices, and growing your business. How can I assist you today?"
	msgAssistantFallback = "Sorry, something went wrong. Please try again."
)

type ChatMessage struct {
	Text   string
	IsUser bool
}

type ChatReplier interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ServiceChat is the customer's chatbot: each reply from the chat service
// either names a service category, which opens its provider list, or is
// shown as text.
type ServiceChat struct {
	status
	replier  ChatReplier
	router   *api.ServiceRouter
	messages []ChatMessage
	open     *api.ServiceCategory
}

func NewServiceChat(replier ChatReplier, router *api.ServiceRouter) *ServiceChat {
	return &ServiceChat{
		replier:  replier,
		router:   router,
		messages: []ChatMessage{{Text: api.ChatGreeting}},
	}
}

func (c *ServiceChat) Messages() []ChatMessage { return c.messages }

// Navigate returns the category whose providers should open next, if any.
func (c *ServiceChat) Navigate() *api.ServiceCategory { return c.open }

// Send posts text and appends the reply. Blank input and sends while a
// reply is pending are ignored.
func (c *ServiceChat) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" || c.loading {
		return nil
	}
	c.messages = append(c.messages, ChatMessage{Text: text, IsUser: true})
	c.open = nil

	c.begin()
	reply, err := c.replier.Reply(ctx, text)
	c.end()
	if err != nil {
		c.messages = append(c.messages, ChatMessage{Text: api.ChatConnectionError})
		return err
	}

	r := c.router.Route(reply)
	c.messages = append(c.messages, ChatMessage{Text: r.Text})
	c.open = r.Service
	return nil
}

type AssistantBackend interface {
	SendAIChat(ctx context.Context, req models.AIChatRequest) (string, error)
}

// AssistantChat is the backend-hosted assistant on both home screens.
type AssistantChat struct {
	status
	backend  AssistantBackend
	owner    *session.Session
	messages []ChatMessage
}

func NewAssistantChat(backend AssistantBackend, owner *session.Session) *AssistantChat {
	greeting := api.ChatGreeting
	if owner.Role == models.RoleProvider {
		greeting = ProviderChatGreeting
	}
	return &AssistantChat{backend: backend, owner: owner, messages: []ChatMessage{{Text: greeting}}}
}

func (c *AssistantChat) Messages() []ChatMessage { return c.messages }

func (c *AssistantChat) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || c.loading {
		return nil
	}
	c.messages = append(c.messages, ChatMessage{Text: text, IsUser: true})

	req := models.AIChatRequest{Message: text, UserType: c.owner.Role}
	if c.owner.Role == models.RoleProvider {
		req.ProviderID = c.owner.UserID
	} else {
		req.UserID = c.owner.UserID
	}

	c.begin()
	reply, err := c.backend.SendAIChat(ctx, req)
	c.end()
	if err != nil {
		c.messages = append(c.messages, ChatMessage{Text: failure(err, msgAssistantFallback)})
		return err
	}
	c.messages = append(c.messages, ChatMessage{Text: reply})
	return nil
}
