package notify

import (
	"github.com/appleboy/go-fcm"

	"roadfine/pkg/logger"
)

// Pusher sends payment confirmations to the driver's phone. Push delivery is
// best effort: a failed push is logged and swallowed, never surfaced to the
// webhook caller.
type Pusher interface {
	Push(deviceToken, title, body string)
}

type fcmPusher struct {
	serverKey string
	log       logger.ILogger
}

func NewFCMPusher(serverKey string, log logger.ILogger) Pusher {
	return &fcmPusher{serverKey: serverKey, log: log}
}

func (p *fcmPusher) Push(deviceToken, title, body string) {
	if p.serverKey == "" || deviceToken == "" {
		return
	}

	client, err := fcm.NewClient(p.serverKey)
	if err != nil {
		p.log.Error("failed to create fcm client", logger.Error(err))
		return
	}

	msg := &fcm.Message{
		To: deviceToken,
		Notification: &fcm.Notification{
			Title: title,
			Body:  body,
		},
	}
	if _, err := client.Send(msg); err != nil {
		p.log.Error("failed to send push notification", logger.Error(err))
	}
}
