package commands

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-bridgepage/content"
	"github.com/goliatone/go-bridgepage/pkg/interfaces"
	"github.com/goliatone/go-bridgepage/publisher"
)

const generatePageMessageType = "bridgepage.publisher.generate_page"

// GeneratePageCommand runs the full generation pipeline for one page. It is
// the async entry point; callers wanting the result synchronously use
// publisher.Service directly.
type GeneratePageCommand struct {
	// Content is the page definition to validate and render.
	Content content.PageContent `json:"content"`
	// PageID optionally pins the page identifier; derived from the headline when empty.
	PageID string `json:"page_id,omitempty"`
	// UserID records which account requested the generation.
	UserID string `json:"user_id"`
}

// Type implements command.Message.
func (GeneratePageCommand) Type() string { return generatePageMessageType }

// Validate ensures the requesting user is present before handlers execute.
func (cmd GeneratePageCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.UserID, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("bridgepage.publisher.generate_page.user_required", "user id is required")
			}
			return nil
		})),
	)
}

// NewGeneratePageHandler builds the dispatcher handler that delegates to the
// publisher service.
func NewGeneratePageHandler(svc publisher.Service, logger interfaces.Logger) *Handler[GeneratePageCommand] {
	return NewHandler(func(ctx context.Context, cmd GeneratePageCommand) error {
		_, err := svc.Generate(ctx, publisher.GenerateRequest{
			Content: cmd.Content,
			PageID:  cmd.PageID,
			UserID:  cmd.UserID,
		})
		return err
	}, WithLogger[GeneratePageCommand](logger), WithOperation[GeneratePageCommand]("generate_page"))
}
