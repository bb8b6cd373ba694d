package commands

import (
	"context"
	"testing"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-bridgepage/content"
	"github.com/goliatone/go-bridgepage/publisher"
)

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

type recordingSubscription struct {
	unsubscribed bool
}

func (s *recordingSubscription) Unsubscribe() { s.unsubscribed = true }

type recordingDispatcher struct {
	subscriptions []*recordingSubscription
}

func (d *recordingDispatcher) RegisterCommand(any) (CommandSubscription, error) {
	sub := &recordingSubscription{}
	d.subscriptions = append(d.subscriptions, sub)
	return sub, nil
}

type stubPublisher struct {
	requests []publisher.GenerateRequest
}

func (s *stubPublisher) Generate(_ context.Context, req publisher.GenerateRequest) (*publisher.GenerateResult, error) {
	s.requests = append(s.requests, req)
	return &publisher.GenerateResult{PageID: req.PageID}, nil
}

func (s *stubPublisher) Status(string) publisher.Status { return publisher.Status{} }

func (s *stubPublisher) Subscribe(context.Context, string) <-chan publisher.Status {
	ch := make(chan publisher.Status)
	close(ch)
	return ch
}

func TestRegisterPublishingCommandsBuildsHandlers(t *testing.T) {
	registry := &recordingRegistry{}
	disp := &recordingDispatcher{}

	result, err := RegisterPublishingCommands(&stubPublisher{}, RegistrationOptions{
		Registry:   registry,
		Dispatcher: disp,
	})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}

	if len(result.Handlers) != 1 {
		t.Fatalf("expected one command handler, got %d", len(result.Handlers))
	}
	if len(registry.handlers) != len(result.Handlers) {
		t.Fatalf("expected registry to record all handlers, got %d of %d", len(registry.handlers), len(result.Handlers))
	}
	if len(disp.subscriptions) != 1 {
		t.Fatalf("expected one dispatcher subscription, got %d", len(disp.subscriptions))
	}

	result.Unsubscribe()
	if !disp.subscriptions[0].unsubscribed {
		t.Fatal("expected Unsubscribe to detach dispatcher subscriptions")
	}
}

func TestRegisterPublishingCommandsWithoutRegistrars(t *testing.T) {
	result, err := RegisterPublishingCommands(&stubPublisher{}, RegistrationOptions{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if len(result.Handlers) != 1 {
		t.Fatalf("expected one command handler, got %d", len(result.Handlers))
	}
	if len(result.Subscriptions) != 0 {
		t.Fatalf("expected no subscriptions, got %d", len(result.Subscriptions))
	}
}

func TestRegisterPublishingCommandsRequiresService(t *testing.T) {
	if _, err := RegisterPublishingCommands(nil, RegistrationOptions{}); err == nil {
		t.Fatal("expected error for nil service")
	}
}

func TestRegisterPublishingCommandsGlobalDispatcher(t *testing.T) {
	svc := &stubPublisher{}

	result, err := RegisterPublishingCommands(svc, RegistrationOptions{GlobalDispatcher: true})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	defer result.Unsubscribe()

	cmd := GeneratePage{
		Content: content.PageContent{Headline: "Launch"},
		PageID:  "launch-abc123-1",
		UserID:  "user-1",
	}
	if err := dispatcher.Dispatch(context.Background(), cmd); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	if len(svc.requests) != 1 {
		t.Fatalf("expected one generation request, got %d", len(svc.requests))
	}
	if svc.requests[0].PageID != "launch-abc123-1" {
		t.Fatalf("unexpected page id %q", svc.requests[0].PageID)
	}
}
