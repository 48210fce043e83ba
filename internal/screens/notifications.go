package screens

import (
	"context"

	"profix/internal/models"
	"profix/internal/session"
)

type NotificationsBackend interface {
	GetNotifications(ctx context.Context, req models.GetNotificationsRequest) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, req models.MarkNotificationReadRequest) (string, error)
}

// Notifications lists the session owner's notifications.
type Notifications struct {
	status
	backend NotificationsBackend
	owner   *session.Session
	items   []models.Notification
}

func NewNotifications(backend NotificationsBackend, owner *session.Session) *Notifications {
	return &Notifications{backend: backend, owner: owner}
}

func (n *Notifications) Items() []models.Notification { return n.items }

func (n *Notifications) Unread() int {
	c := 0
	for _, it := range n.items {
		if !it.IsRead {
			c++
		}
	}
	return c
}

// recipient returns the user_id/provider_id pair for the owner's role.
func (n *Notifications) recipient() (user, provider *models.ID) {
	id := n.owner.UserID
	if n.owner.Role == models.RoleProvider {
		return nil, &id
	}
	return &id, nil
}

func (n *Notifications) Load(ctx context.Context) error {
	n.begin()
	defer n.end()
	uid, pid := n.recipient()
	items, err := n.backend.GetNotifications(ctx, models.GetNotificationsRequest{UserID: uid, ProviderID: pid})
	if err != nil {
		n.message = failure(err, "Failed to load notifications")
		return err
	}
	n.items = items
	return nil
}

// MarkRead marks one notification read locally once the backend accepts it.
func (n *Notifications) MarkRead(ctx context.Context, id models.ID) error {
	uid, pid := n.recipient()
	if _, err := n.backend.MarkNotificationRead(ctx, models.MarkNotificationReadRequest{
		NotificationID: &id, UserID: uid, ProviderID: pid,
	}); err != nil {
		n.message = failure(err, "Failed to update notification")
		return err
	}
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].IsRead = true
		}
	}
	return nil
}

func (n *Notifications) MarkAll(ctx context.Context) error {
	uid, pid := n.recipient()
	if _, err := n.backend.MarkNotificationRead(ctx, models.MarkNotificationReadRequest{
		UserID: uid, ProviderID: pid, MarkAll: true,
	}); err != nil {
		n.message = failure(err, "Failed to update notifications")
		return err
	}
	for i := range n.items {
		n.items[i].IsRead = true
	}
	return nil
}
