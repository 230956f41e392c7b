package kernel

import (
	"fmt"

	"market/internal/pkg/errs"
)

// ErrChatIDIsNotConstructed indicates a ChatID was not created via NewChatID.
var ErrChatIDIsNotConstructed = errs.NewValueIsRequiredError("ChatID must be created via NewChatID")

// ChatID identifies a person on the messaging platform: a buyer placing
// orders, an admin overseeing them, or a deliverer fulfilling them. The
// platform hands out positive 64-bit identifiers; everything else is
// rejected at construction.
//
// ChatID is the recipient address for notification fan-out, so it is the
// one identity the core shares with the external transport.
//
// Example:
//
//	buyer, err := kernel.NewChatID(784523911)
//	if err != nil {
//	    // handle error
//	}
type ChatID struct {
	id int64
}

// NewChatID creates a ChatID from a platform identifier.
// The identifier must be positive.
func NewChatID(id int64) (ChatID, error) {
	if id <= 0 {
		return ChatID{}, errs.NewValueIsInvalidErrorWithCause(
			"chat id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	return ChatID{id: id}, nil
}

// Int64 returns the raw platform identifier for persistence and transport.
func (c ChatID) Int64() int64 {
	return c.id
}

// String formats the identifier for logs and error messages.
func (c ChatID) String() string {
	return fmt.Sprintf("%d", c.id)
}

// IsEqual compares two chat identifiers.
func (c ChatID) IsEqual(other ChatID) bool {
	return c.id == other.id
}

// Validate returns ErrChatIDIsNotConstructed for the zero value.
func (c ChatID) Validate() error {
	if c.id == 0 {
		return ErrChatIDIsNotConstructed
	}
	return nil
}
