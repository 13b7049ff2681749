package domain

import (
	"errors"
	"testing"
)

func TestValidateSlug(t *testing.T) {
	t.Parallel()

	if err := ValidateSlug("solar-microgrid-2026"); err != nil {
		t.Fatalf("expected valid slug, got %v", err)
	}
	if err := ValidateSlug("  Solar-Microgrid "); err != nil {
		t.Fatalf("expected slug to normalize before validation, got %v", err)
	}
	for _, bad := range []string{"", "a", "-leading", "trailing-", "two--dashes", "spa ce", "UPPER_case!"} {
		if err := ValidateSlug(bad); err == nil {
			t.Fatalf("expected invalid slug error for %q", bad)
		}
	}
}

func TestNormalizeEntityTypes(t *testing.T) {
	t.Parallel()

	types, err := NormalizeEntityTypes([]string{" Campaign-Info ", "socials", "campaign-info"})
	if err != nil {
		t.Fatalf("normalize entity types: %v", err)
	}
	if len(types) != 2 || types[0] != EntityTypeCampaignInfo || types[1] != EntityTypeSocials {
		t.Fatalf("expected deduplicated [campaign-info socials], got %v", types)
	}

	if _, err := NormalizeEntityTypes([]string{"campaign-info", "banner"}); err == nil {
		t.Fatalf("expected error for unrecognized entity type")
	}
	if _, err := NormalizeEntityTypes(nil); err == nil {
		t.Fatalf("expected error for empty entity type list")
	}
}

func TestItemFlags(t *testing.T) {
	t.Parallel()

	flags := ItemFlags([]EntityType{EntityTypeSocials})
	if len(flags) != 3 {
		t.Fatalf("expected all three kinds present, got %v", flags)
	}
	if !flags[EntityTypeSocials] || flags[EntityTypeCampaignInfo] || flags[EntityTypeCampaignSummary] {
		t.Fatalf("expected only socials flagged, got %v", flags)
	}
}

func TestValidateApprovalTransition(t *testing.T) {
	t.Parallel()

	if err := ValidateApprovalTransition(ApprovalStatusPending, ApprovalStatusApproved); err != nil {
		t.Fatalf("pending -> approved should be allowed: %v", err)
	}
	if err := ValidateApprovalTransition(ApprovalStatusPending, ApprovalStatusRejected); err != nil {
		t.Fatalf("pending -> rejected should be allowed: %v", err)
	}
	if err := ValidateApprovalTransition(ApprovalStatusRejected, ApprovalStatusPending); err != nil {
		t.Fatalf("resubmission back to pending should be allowed: %v", err)
	}
	err := ValidateApprovalTransition(ApprovalStatusApproved, ApprovalStatusRejected)
	if !errors.Is(err, ErrStateConflict) {
		t.Fatalf("expected state conflict, got %v", err)
	}
}

func TestNormalizeReviewAction(t *testing.T) {
	t.Parallel()

	if NormalizeReviewAction(" Approve ") != ReviewActionApprove {
		t.Fatalf("expected approve action")
	}
	if NormalizeReviewAction("reject") != ReviewActionReject {
		t.Fatalf("expected reject action")
	}
	if NormalizeReviewAction("publish") != "" {
		t.Fatalf("expected empty action for unknown input")
	}
	if StatusForAction(ReviewActionReject) != ApprovalStatusRejected {
		t.Fatalf("expected rejected status for reject action")
	}
	if StatusForAction(ReviewActionApprove) != ApprovalStatusApproved {
		t.Fatalf("expected approved status for approve action")
	}
}
