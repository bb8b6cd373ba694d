package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePageAcceptsWellFormedPayload(t *testing.T) {
	payload := map[string]any{
		"headline":        "Transform Your Business",
		"subheadline":     "The proven system",
		"body_paragraphs": []any{"First paragraph."},
		"cta_buttons":     []any{"Get Access"},
		"affiliate_link":  "https://example.com/offer",
		"primary_color":   "#3b82f6",
		"secondary_color": "#1e40af",
		"heading_font":    "Poppins",
		"body_font":       "Inter",
		"hero_video": map[string]any{
			"enabled": true,
			"embed":   "<iframe></iframe>",
		},
		"bonuses": []any{
			map[string]any{"title": "Guide", "type": "PDF Guide", "enabled": true},
		},
	}
	if err := ValidatePage(payload); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
}

func TestValidatePageRejectsWrongTypes(t *testing.T) {
	payload := map[string]any{
		"headline":    "ok",
		"cta_buttons": "should be an array",
	}
	err := ValidatePage(payload)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrPayloadInvalid) {
		t.Fatalf("expected ErrPayloadInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "cta_buttons") {
		t.Fatalf("error %q does not name the offending field", err)
	}
}

func TestValidatePageRejectsUnknownFields(t *testing.T) {
	payload := map[string]any{
		"headline": "ok",
		"surprise": true,
	}
	if err := ValidatePage(payload); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestValidatePageEmptyPayload(t *testing.T) {
	if err := ValidatePage(nil); err != nil {
		t.Fatalf("empty payload has no shape violations, got %v", err)
	}
}
