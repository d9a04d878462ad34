package notify

import "time"

// Embed colours
const (
	ColorLevelUp   = 0x2ecc71 // Green
	ColorCompanion = 0x3498db // Blue
	ColorMilestone = 0xe67e22 // Orange
	ColorSynergy   = 0x9b59b6 // Purple
	ColorResonance = 0xf1c40f // Gold
)

// Delivery settings
const (
	DefaultQueueSize    = 64
	DefaultSendTimeout  = 10 * time.Second
	EmbedFooterText     = "MindQuest"
	WebhookURLPathToken = "webhooks"
)

// Log messages
const (
	LogMsgNotifierSubscribed = "Discord notifier subscribed"
	LogMsgNotificationSent   = "Sent Discord notification"
	LogMsgNotificationFailed = "Failed to send Discord notification"
	LogMsgNotificationQueued = "Discord notification queued"
	LogMsgQueueFull          = "Discord notification queue full, dropping"
	LogMsgPayloadInvalid     = "Invalid payload for notification"
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
)
