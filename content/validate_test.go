package content

import (
	"reflect"
	"testing"
)

func completeContent() PageContent {
	return PageContent{
		Headline:       "Transform Your Business",
		Subheadline:    "The proven system behind 10,000 success stories",
		BodyParagraphs: []string{"First paragraph.", "Second paragraph."},
		CTAButtons:     []string{"Get Instant Access"},
		AffiliateLink:  "https://example.com/offer",
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#1e40af",
		HeadingFont:    "Poppins",
		BodyFont:       "Inter",
	}
}

func TestValidateCompleteContent(t *testing.T) {
	result := Validate(completeContent())
	if !result.Valid {
		t.Fatalf("expected valid content, got errors %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
}

func TestValidateEmptyContentListsEveryErrorInOrder(t *testing.T) {
	result := Validate(PageContent{})
	if result.Valid {
		t.Fatal("expected empty content to be invalid")
	}

	want := []string{
		MsgHeadlineRequired,
		MsgSubheadlineRequired,
		MsgBodyParagraphRequired,
		MsgCTAButtonRequired,
		MsgAffiliateLinkRequired,
		MsgPrimaryColorRequired,
		MsgSecondaryColorRequired,
		MsgHeadingFontRequired,
		MsgBodyFontRequired,
	}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("error order mismatch:\n got %v\nwant %v", result.Errors, want)
	}
}

func TestValidateWhitespaceOnlyFields(t *testing.T) {
	c := completeContent()
	c.Headline = "   "
	c.AffiliateLink = "\t\n"
	c.BodyParagraphs = []string{"", "   "}
	c.CTAButtons = []string{" "}

	result := Validate(c)
	if result.Valid {
		t.Fatal("expected whitespace-only fields to be invalid")
	}

	want := []string{
		MsgHeadlineRequired,
		MsgBodyParagraphRequired,
		MsgCTAButtonRequired,
		MsgAffiliateLinkRequired,
	}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Fatalf("error mismatch:\n got %v\nwant %v", result.Errors, want)
	}
}

func TestValidateSingleNonEmptyEntrySatisfiesListRules(t *testing.T) {
	c := completeContent()
	c.BodyParagraphs = []string{"", "only this one counts", ""}
	c.CTAButtons = []string{"   ", "Buy Now"}

	result := Validate(c)
	if !result.Valid {
		t.Fatalf("expected valid content, got %v", result.Errors)
	}
}

func TestValidateIsPure(t *testing.T) {
	c := PageContent{Headline: "x"}
	first := Validate(c)
	second := Validate(c)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated validation diverged: %v vs %v", first, second)
	}
}
