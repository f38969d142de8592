package notificationhub

import (
	"context"
	"fmt"
	"net/url"

	"github.com/SeaCloudHub/customers/domain/notification"
	"github.com/SeaCloudHub/customers/pkg/config"
	"github.com/go-resty/resty/v2"
)

const sender = "customers"

type NotificationHub struct {
	host   *url.URL
	client *resty.Client
}

func NewNotificationHub(cfg *config.Config) (*NotificationHub, error) {
	u, err := url.Parse(cfg.NotificationHub.Endpoint)
	if err != nil {
		return nil, err
	}

	client := resty.New().SetBaseURL(u.String())
	if cfg.NotificationHub.Token != "" {
		client.SetAuthToken(cfg.NotificationHub.Token)
	}

	return &NotificationHub{
		host:   u,
		client: client,
	}, nil
}

func (n *NotificationHub) pushNotification(ctx context.Context, notificationReq NotificationRequest) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notificationReq).
		Post("/api/internal/notifications")

	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("failed to push notification: %s", resp.Status())
	}

	return nil
}

func (n *NotificationHub) SendNotification(ctx context.Context, notifications []notification.Notification) error {
	notificationReq := NotificationRequest{
		Notifications: notifications,
		From:          sender,
	}
	return n.pushNotification(ctx, notificationReq)
}
