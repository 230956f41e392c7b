package commands

import (
	"errors"

	"market/internal/core/domain/model/deliverer"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/guard"
)

var ErrRegisterDelivererCommandIsNotConstructed = errors.New(
	"RegisterDelivererCommand must be created via NewRegisterDelivererCommand constructor",
)

// RegisterDelivererCommand represents onboarding a new deliverer with
// their chat identity and contact details.
type RegisterDelivererCommand struct { //nolint:recvcheck //using for validation
	delivererID kernel.UUID
	chat        kernel.ChatID
	name        string
	phone       string

	guard guard.ConstructorGuard
}

// NewRegisterDelivererCommand creates a command to register a deliverer.
func NewRegisterDelivererCommand(
	delivererID kernel.UUID,
	chat kernel.ChatID,
	name string,
	phone string,
) (RegisterDelivererCommand, error) {
	cmd := RegisterDelivererCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDelivererID(delivererID),
		cmd.setChat(chat),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return RegisterDelivererCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDelivererCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDelivererCommandIsNotConstructed)
}

// DelivererID returns the identifier the deliverer will be created under.
func (c RegisterDelivererCommand) DelivererID() kernel.UUID {
	return c.delivererID
}

// Chat returns the deliverer's messaging-platform identity.
func (c RegisterDelivererCommand) Chat() kernel.ChatID {
	return c.chat
}

// Name returns the deliverer's display name.
func (c RegisterDelivererCommand) Name() string {
	return c.name
}

// Phone returns the deliverer's contact phone.
func (c RegisterDelivererCommand) Phone() string {
	return c.phone
}

func (c *RegisterDelivererCommand) setDelivererID(delivererID kernel.UUID) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}

	c.delivererID = delivererID
	return nil
}

func (c *RegisterDelivererCommand) setChat(chat kernel.ChatID) error {
	if err := chat.Validate(); err != nil {
		return err
	}

	c.chat = chat
	return nil
}

func (c *RegisterDelivererCommand) setName(name string) error {
	if name == "" {
		return deliverer.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterDelivererCommand) setPhone(phone string) error {
	if phone == "" {
		return deliverer.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
