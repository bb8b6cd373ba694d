package hosting

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	routeGroupPages = "pages"
	routePage       = "page"
)

// LocatorBuilder resolves page locators through a go-urlkit RouteManager so
// the URL scheme stays configuration, not string concatenation scattered
// through the stores.
type LocatorBuilder struct {
	manager *urlkit.RouteManager
}

// NewLocatorBuilder constructs a builder rooted at the given hosting origin.
func NewLocatorBuilder(baseURL string) *LocatorBuilder {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroupPages,
				BaseURL: base,
				Paths: map[string]string{
					routePage: "/pages/:id",
				},
			},
		},
	})
	return &LocatorBuilder{manager: manager}
}

// PageURL builds the locator for a page ID.
func (b *LocatorBuilder) PageURL(pageID string) (string, error) {
	if b == nil || b.manager == nil {
		return "", fmt.Errorf("hosting: locator builder not configured")
	}

	group, err := lookupGroup(b.manager, routeGroupPages)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(group, routePage)
	if err != nil {
		return "", err
	}
	builder.WithParam("id", pageID)

	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("hosting: build page url: %w", err)
	}
	return url, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("hosting: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("hosting: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("hosting: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
