package discord

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/ogomes/farol/internal/notify"
)

type mockSession struct {
	mu       sync.Mutex
	opened   int
	closed   int
	openErr  error
	sendErr  error
	embeds   []sentEmbed
}

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

func (m *mockSession) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.openErr != nil {
		return m.openErr
	}
	m.opened++
	return nil
}

func (m *mockSession) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return nil
}

func (m *mockSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.embeds = append(m.embeds, sentEmbed{channelID: channelID, embed: embed})
	return &discordgo.Message{}, nil
}

func newTestAdapter() (*Adapter, *mockSession) {
	sess := &mockSession{}
	return &Adapter{sess: sess, channelID: "123456"}, sess
}

func TestNew(t *testing.T) {
	a, err := New("token", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == nil {
		t.Fatal("expected non-nil adapter")
	}
}

func TestSend_OpensOnFirstUse(t *testing.T) {
	a, sess := newTestAdapter()

	if err := a.Send(context.Background(), notify.Message{Title: "Farol", Body: "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Send(context.Background(), notify.Message{Title: "Farol", Body: "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.opened != 1 {
		t.Errorf("opened = %d, want 1 (lazy open, once)", sess.opened)
	}
	if len(sess.embeds) != 2 {
		t.Errorf("embeds sent = %d, want 2", len(sess.embeds))
	}
}

func TestSend_EmbedContent(t *testing.T) {
	a, sess := newTestAdapter()

	err := a.Send(context.Background(), notify.Message{
		Title: "Farol — progresso",
		Body:  "• Engenharia: 10/30 pontos (33%)",
		Color: "#36a64f",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sent := sess.embeds[0]
	if sent.channelID != "123456" {
		t.Errorf("channel = %q, want 123456", sent.channelID)
	}
	if sent.embed.Title != "Farol — progresso" {
		t.Errorf("title = %q", sent.embed.Title)
	}
	if sent.embed.Description != "• Engenharia: 10/30 pontos (33%)" {
		t.Errorf("description = %q", sent.embed.Description)
	}
	if sent.embed.Color != 0x36a64f {
		t.Errorf("color = %#x, want 0x36a64f", sent.embed.Color)
	}
}

func TestSend_NoChannel(t *testing.T) {
	a := &Adapter{sess: &mockSession{}}
	if err := a.Send(context.Background(), notify.Message{}); err == nil {
		t.Fatal("expected error for missing channel")
	}
}

func TestSend_OpenError(t *testing.T) {
	a, sess := newTestAdapter()
	sess.openErr = fmt.Errorf("bad token")

	err := a.Send(context.Background(), notify.Message{})
	if err == nil {
		t.Fatal("expected open error")
	}
	if !strings.Contains(err.Error(), "open session") {
		t.Errorf("error = %q, want open session error", err.Error())
	}
}

func TestSend_SendError(t *testing.T) {
	a, sess := newTestAdapter()
	sess.sendErr = fmt.Errorf("missing permissions")

	err := a.Send(context.Background(), notify.Message{})
	if err == nil {
		t.Fatal("expected send error")
	}
	if !strings.Contains(err.Error(), "send embed") {
		t.Errorf("error = %q, want send embed error", err.Error())
	}
}

func TestClose_OnlyWhenOpened(t *testing.T) {
	a, sess := newTestAdapter()

	// Never opened: Close is a no-op.
	if err := a.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.closed != 0 {
		t.Errorf("closed = %d, want 0", sess.closed)
	}

	if err := a.Send(context.Background(), notify.Message{}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if sess.closed != 1 {
		t.Errorf("closed = %d, want 1", sess.closed)
	}
}

func TestEmbedColor(t *testing.T) {
	tests := []struct {
		hex  string
		want int
	}{
		{"#36a64f", 0x36a64f},
		{"36a64f", 0x36a64f},
		{"#ff9800", 0xff9800},
		{"", 0},
		{"not-a-color", 0},
	}
	for _, tt := range tests {
		if got := embedColor(tt.hex); got != tt.want {
			t.Errorf("embedColor(%q) = %#x, want %#x", tt.hex, got, tt.want)
		}
	}
}

var _ notify.Adapter = (*Adapter)(nil)
