// Package chat holds the outbound chat-side adapters: the shipped
// MessageSender implementation and the config-backed admin directory.
// The chat platform itself is an external collaborator; LogSender stands
// in for it by writing every outgoing message to the structured log.
package chat

import (
	"context"
	"log/slog"

	"market/internal/core/domain/model/kernel"
)

// LogSender implements ports.MessageSender by logging outgoing messages
// instead of delivering them to a chat platform.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that writes outgoing messages to logger.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "chat_sender")}
}

// Send logs the message addressed to the recipient.
func (s *LogSender) Send(ctx context.Context, recipient kernel.ChatID, text string) error {
	s.logger.InfoContext(ctx, "outgoing message", "recipient", recipient, "text", text)
	return nil
}

// StaticAdminDirectory implements ports.AdminDirectory from a fixed list
// of chat ids loaded at startup.
type StaticAdminDirectory struct {
	chats []kernel.ChatID
}

// NewStaticAdminDirectory creates a directory over the given chat ids.
// Invalid ids are rejected so a misconfigured admin list fails at startup
// rather than at the first fan-out.
func NewStaticAdminDirectory(ids []int64) (*StaticAdminDirectory, error) {
	chats := make([]kernel.ChatID, 0, len(ids))
	for _, id := range ids {
		chat, err := kernel.NewChatID(id)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	return &StaticAdminDirectory{chats: chats}, nil
}

// ListAdminChats returns the configured admin chats.
func (d *StaticAdminDirectory) ListAdminChats(_ context.Context) ([]kernel.ChatID, error) {
	chats := make([]kernel.ChatID, len(d.chats))
	copy(chats, d.chats)
	return chats, nil
}
