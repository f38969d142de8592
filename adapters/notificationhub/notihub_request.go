package notificationhub

import "github.com/SeaCloudHub/customers/domain/notification"

type NotificationRequest struct {
	From          string                      `json:"from"`
	Notifications []notification.Notification `json:"notifications"`
}
