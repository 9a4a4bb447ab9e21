// Package discord implements the notify Adapter using a Discord bot session.
package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/ogomes/farol/internal/notify"
)

// session abstracts the discordgo.Session methods we use, enabling test mocks.
type session interface {
	Open() error
	Close() error
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// realSession wraps *discordgo.Session to implement the session interface.
type realSession struct {
	s *discordgo.Session
}

func (r *realSession) Open() error  { return r.s.Open() }
func (r *realSession) Close() error { return r.s.Close() }
func (r *realSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	return r.s.ChannelMessageSendEmbed(channelID, embed, options...)
}

// Adapter implements notify.Adapter for Discord.
type Adapter struct {
	mu        sync.Mutex
	sess      session
	channelID string
	opened    bool
}

// New creates a Discord adapter posting to the given channel with a bot token.
func New(token, channelID string) (*Adapter, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: new session: %w", err)
	}
	return &Adapter{sess: &realSession{s: dg}, channelID: channelID}, nil
}

// Send posts the message as an embed, opening the gateway connection on
// first use.
func (a *Adapter) Send(ctx context.Context, msg notify.Message) error {
	if a.channelID == "" {
		return fmt.Errorf("discord: no channel specified")
	}

	a.mu.Lock()
	if !a.opened {
		if err := a.sess.Open(); err != nil {
			a.mu.Unlock()
			return fmt.Errorf("discord: open session: %w", err)
		}
		a.opened = true
	}
	a.mu.Unlock()

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Body,
		Color:       embedColor(msg.Color),
	}
	if _, err := a.sess.ChannelMessageSendEmbed(a.channelID, embed); err != nil {
		return fmt.Errorf("discord: send embed: %w", err)
	}
	return nil
}

// Close shuts down the gateway connection if it was opened.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.opened {
		return nil
	}
	a.opened = false
	return a.sess.Close()
}

// embedColor converts a "#rrggbb" hint to Discord's integer color.
func embedColor(hex string) int {
	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}
