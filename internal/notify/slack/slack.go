// Package slack implements the notify Adapter using the Slack Web API.
package slack

import (
	"context"
	"fmt"

	"github.com/ogomes/farol/internal/notify"
	slackapi "github.com/slack-go/slack"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Adapter implements notify.Adapter for Slack.
type Adapter struct {
	client    slackClient
	channelID string
}

// New creates a Slack adapter posting to the given channel with a bot token.
func New(token, channelID string) *Adapter {
	return &Adapter{
		client:    slackapi.New(token),
		channelID: channelID,
	}
}

// Send posts the message as an attachment to the configured channel.
func (a *Adapter) Send(ctx context.Context, msg notify.Message) error {
	if a.channelID == "" {
		return fmt.Errorf("slack: no channel specified")
	}

	attachment := slackapi.Attachment{
		Title: msg.Title,
		Text:  msg.Body,
		Color: msg.Color,
	}
	_, _, err := a.client.PostMessageContext(ctx, a.channelID,
		slackapi.MsgOptionAttachments(attachment))
	if err != nil {
		return fmt.Errorf("slack: post message: %w", err)
	}
	return nil
}

// Close is a no-op; the Web API client holds no connection.
func (a *Adapter) Close() error { return nil }
