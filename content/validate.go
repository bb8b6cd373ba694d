package content

import "strings"

// Messages surfaced by Validate. Callers match on these strings when showing
// itemized errors, so they are part of the package contract.
const (
	MsgHeadlineRequired       = "Headline is required"
	MsgSubheadlineRequired    = "Subheadline is required"
	MsgBodyParagraphRequired  = "At least one body paragraph is required"
	MsgCTAButtonRequired      = "At least one CTA button is required"
	MsgAffiliateLinkRequired  = "Affiliate link is required"
	MsgPrimaryColorRequired   = "Primary color is required"
	MsgSecondaryColorRequired = "Secondary color is required"
	MsgHeadingFontRequired    = "Heading font is required"
	MsgBodyFontRequired       = "Body font is required"
)

// ValidationResult reports whether a PageContent is generation-ready together
// with the ordered, human-readable reasons it is not.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate checks the required-field rules a PageContent must satisfy before
// generation. The check order is fixed so error lists are deterministic. The
// function is pure; it can be called repeatedly against the same input.
//
// This is the single generation-readiness predicate: the publisher runs it as
// its validating stage and no other path may bypass it.
func Validate(c PageContent) ValidationResult {
	var errs []string

	if strings.TrimSpace(c.Headline) == "" {
		errs = append(errs, MsgHeadlineRequired)
	}
	if strings.TrimSpace(c.Subheadline) == "" {
		errs = append(errs, MsgSubheadlineRequired)
	}
	if !anyNonEmpty(c.BodyParagraphs) {
		errs = append(errs, MsgBodyParagraphRequired)
	}
	if !anyNonEmpty(c.CTAButtons) {
		errs = append(errs, MsgCTAButtonRequired)
	}
	if strings.TrimSpace(c.AffiliateLink) == "" {
		errs = append(errs, MsgAffiliateLinkRequired)
	}
	if c.PrimaryColor == "" {
		errs = append(errs, MsgPrimaryColorRequired)
	}
	if c.SecondaryColor == "" {
		errs = append(errs, MsgSecondaryColorRequired)
	}
	if c.HeadingFont == "" {
		errs = append(errs, MsgHeadingFontRequired)
	}
	if c.BodyFont == "" {
		errs = append(errs, MsgBodyFontRequired)
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

func anyNonEmpty(values []string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
