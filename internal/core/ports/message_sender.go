package ports

import (
	"context"

	"market/internal/core/domain/model/kernel"
)

// MessageSender delivers one text message to one recipient on the
// messaging platform. Sends are fire-and-forget: the implementation
// reports success or failure for that recipient and nothing else.
// Implementations must honor ctx cancellation so a slow recipient
// cannot stall a fan-out.
type MessageSender interface {
	Send(ctx context.Context, recipient kernel.ChatID, text string) error
}

// AdminDirectory exposes the admin recipient pool. It is re-queried on
// every fan-out rather than cached, so membership changes take effect
// immediately.
type AdminDirectory interface {
	ListAdminChats(ctx context.Context) ([]kernel.ChatID, error)
}
