package commands

import (
	"errors"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"

	publishcmd "github.com/goliatone/go-bridgepage/internal/commands"
	"github.com/goliatone/go-bridgepage/internal/logging"
	"github.com/goliatone/go-bridgepage/pkg/interfaces"
	"github.com/goliatone/go-bridgepage/publisher"
)

// GeneratePage is the command message hosts dispatch to run the publishing
// pipeline asynchronously.
type GeneratePage = publishcmd.GeneratePageCommand

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
	// GlobalDispatcher additionally subscribes handlers on the process-wide
	// go-command dispatcher.
	GlobalDispatcher bool
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// Unsubscribe detaches every dispatcher subscription in the result.
func (r *RegistrationResult) Unsubscribe() {
	if r == nil {
		return
	}
	for _, sub := range r.Subscriptions {
		if sub != nil {
			sub.Unsubscribe()
		}
	}
	r.Subscriptions = nil
}

// RegisterPublishingCommands builds the publishing command handlers for the
// provided service and optionally registers them with registry/dispatcher
// integrations.
func RegisterPublishingCommands(svc publisher.Service, opts RegistrationOptions) (*RegistrationResult, error) {
	if svc == nil {
		return nil, errors.New("publishing command registration: service is nil")
	}

	logger := logging.PublisherLogger(opts.LoggerProvider)
	result := &RegistrationResult{
		Handlers:      make([]any, 0, 1),
		Subscriptions: make([]CommandSubscription, 0, 1),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	handler := publishcmd.NewGeneratePageHandler(svc, logger)
	register(handler)

	if opts.GlobalDispatcher {
		sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(0))
		result.Subscriptions = append(result.Subscriptions, sub)
	}

	if errs != nil {
		return result, errs
	}
	return result, nil
}
