package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MindQuest_Go/internal/event"
	"github.com/osse101/MindQuest_Go/internal/logger"
)

// WebhookExecutor is the part of *discordgo.Session the notifier uses
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// announcedTypes are the events posted to the channel
var announcedTypes = []event.Type{
	event.ProgressionLevelUp,
	event.ProgressionCompanionLevelUp,
	event.ProgressionMilestoneReached,
	event.ProgressionSynergyUnlocked,
	event.ProgressionResonanceFired,
}

type delivery struct {
	embed  *discordgo.MessageEmbed
	reqID  string
	source event.Type
}

// DiscordNotifier posts progression highlights to a Discord webhook.
// HandleEvent only enqueues; delivery runs on one background goroutine.
type DiscordNotifier struct {
	executor  WebhookExecutor
	webhookID string
	token     string

	queue    chan delivery
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewDiscordNotifier creates a notifier for a webhook URL of the form
// https://discord.com/api/webhooks/{id}/{token}
func NewDiscordNotifier(webhookURL string) (*DiscordNotifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Client.Timeout = DefaultSendTimeout
	return newDiscordNotifier(session, id, token, DefaultQueueSize), nil
}

func newDiscordNotifier(executor WebhookExecutor, webhookID, token string, queueSize int) *DiscordNotifier {
	n := &DiscordNotifier{
		executor:  executor,
		webhookID: webhookID,
		token:     token,
		queue:     make(chan delivery, queueSize),
		quit:      make(chan struct{}),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// ParseWebhookURL extracts the webhook ID and token from a Discord webhook URL
func ParseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", ErrMsgInvalidWebhookURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part == WebhookURLPathToken && i+2 < len(parts) {
			id, token := parts[i+1], parts[i+2]
			if id != "" && token != "" {
				return id, token, nil
			}
		}
	}
	return "", "", fmt.Errorf("%s: %q", ErrMsgInvalidWebhookURL, u.Redacted())
}

// Subscribe registers the notifier for every announced event type
func (n *DiscordNotifier) Subscribe(bus event.Bus) {
	for _, t := range announcedTypes {
		bus.Subscribe(t, n.HandleEvent)
	}
	logger.Info(LogMsgNotifierSubscribed, "event_types", len(announcedTypes))
}

// HandleEvent renders the event and queues it for delivery.
// Notification problems are logged and never fail the publisher.
func (n *DiscordNotifier) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	embed, err := embedFor(evt)
	if err != nil {
		log.Warn(LogMsgPayloadInvalid, "event_type", evt.Type, "error", err)
		return nil
	}
	if embed == nil {
		return nil
	}

	select {
	case <-n.quit:
		return nil
	default:
	}

	select {
	case n.queue <- delivery{embed: embed, reqID: logger.GetRequestID(ctx), source: evt.Type}:
		log.Debug(LogMsgNotificationQueued, "event_type", evt.Type)
	default:
		log.Warn(LogMsgQueueFull, "event_type", evt.Type)
	}
	return nil
}

func (n *DiscordNotifier) run() {
	defer n.wg.Done()
	for {
		select {
		case d := <-n.queue:
			n.send(d)
		case <-n.quit:
			// Flush what is already queued before exiting
			for {
				select {
				case d := <-n.queue:
					n.send(d)
				default:
					return
				}
			}
		}
	}
}

func (n *DiscordNotifier) send(d delivery) {
	ctx := context.Background()
	if d.reqID != "" {
		ctx = logger.WithRequestID(ctx, d.reqID)
	}
	log := logger.FromContext(ctx)

	_, err := n.executor.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{d.embed},
	})
	if err != nil {
		log.Error(LogMsgNotificationFailed, "event_type", d.source, "error", err)
		return
	}
	log.Info(LogMsgNotificationSent, "event_type", d.source)
}

// Shutdown stops accepting events and waits for queued notifications to be sent
func (n *DiscordNotifier) Shutdown(ctx context.Context) error {
	n.stopOnce.Do(func() { close(n.quit) })

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
