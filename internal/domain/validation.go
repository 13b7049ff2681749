package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func NormalizeSlug(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ValidateSlug(slug string) error {
	slug = NormalizeSlug(slug)
	if len(slug) < 2 || len(slug) > 120 || !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: invalid campaign slug", ErrInvalidInput)
	}
	return nil
}

func NormalizeEntityType(raw string) EntityType {
	switch EntityType(strings.ToLower(strings.TrimSpace(raw))) {
	case EntityTypeCampaignInfo:
		return EntityTypeCampaignInfo
	case EntityTypeCampaignSummary:
		return EntityTypeCampaignSummary
	case EntityTypeSocials:
		return EntityTypeSocials
	default:
		return ""
	}
}

// NormalizeEntityTypes maps the raw list to the recognized dashboard-item kinds,
// deduplicated, preserving first-seen order.
func NormalizeEntityTypes(raw []string) ([]EntityType, error) {
	seen := map[EntityType]bool{}
	out := make([]EntityType, 0, len(raw))
	for _, r := range raw {
		et := NormalizeEntityType(r)
		if et == "" {
			return nil, fmt.Errorf("%w: unrecognized entity type %q", ErrInvalidInput, strings.TrimSpace(r))
		}
		if seen[et] {
			continue
		}
		seen[et] = true
		out = append(out, et)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one entity type is required", ErrInvalidInput)
	}
	return out, nil
}

// ItemFlags builds the submitted-item mapping for a submission: every recognized
// kind is present, named kinds flagged true.
func ItemFlags(types []EntityType) map[EntityType]bool {
	flags := map[EntityType]bool{
		EntityTypeCampaignInfo:    false,
		EntityTypeCampaignSummary: false,
		EntityTypeSocials:         false,
	}
	for _, et := range types {
		flags[et] = true
	}
	return flags
}

func NormalizeReviewAction(raw string) ReviewAction {
	switch ReviewAction(strings.ToLower(strings.TrimSpace(raw))) {
	case ReviewActionApprove:
		return ReviewActionApprove
	case ReviewActionReject:
		return ReviewActionReject
	default:
		return ""
	}
}

// ValidateApprovalTransition enforces the approval state machine: a pending record
// may move to approved or rejected; terminal records return to pending only through
// a fresh submission, never through review.
func ValidateApprovalTransition(from, to ApprovalStatus) error {
	if from == ApprovalStatusPending && (to == ApprovalStatusApproved || to == ApprovalStatusRejected) {
		return nil
	}
	if to == ApprovalStatusPending {
		return nil
	}
	return fmt.Errorf("%w: approval is %s, not pending", ErrStateConflict, from)
}

func StatusForAction(action ReviewAction) ApprovalStatus {
	if action == ReviewActionReject {
		return ApprovalStatusRejected
	}
	return ApprovalStatusApproved
}

func CloneItems(items map[EntityType]bool) map[EntityType]bool {
	out := make(map[EntityType]bool, len(items))
	for k, v := range items {
		out[k] = v
	}
	return out
}
