package logging

import (
	"context"

	"github.com/goliatone/go-bridgepage/pkg/interfaces"
)

const (
	rootModule      = "bridgepage"
	contentModule   = "bridgepage.content"
	rendererModule  = "bridgepage.renderer"
	publisherModule = "bridgepage.publisher"
	hostingModule   = "bridgepage.hosting"
	markdownModule  = "bridgepage.markdown"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger namespace reserved for content helpers.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// RendererLogger returns the logger namespace reserved for the renderer.
func RendererLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rendererModule)
}

// PublisherLogger returns the logger namespace reserved for the publisher.
func PublisherLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, publisherModule)
}

// HostingLogger returns the logger namespace reserved for hosting stores.
func HostingLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, hostingModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown loading.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
