package player

import (
	"strconv"
	"strings"

	"github.com/isaachansen/osrs-companion/internal/oserr"
)

// MaxUsernameLength is the OSRS display name limit
const MaxUsernameLength = 12

// ValidateUsername checks an OSRS username: non-empty after trimming and
// at most 12 characters.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return oserr.NewValidationError("username", username, "username is required")
	}
	if len(trimmed) > MaxUsernameLength {
		return oserr.NewValidationError("username", username, "username exceeds 12 characters")
	}
	return nil
}

// ValidateSkill checks an optional skill name against the known skills
func ValidateSkill(skill string) error {
	if skill == "" {
		return nil
	}
	if !IsSkillName(skill) {
		return oserr.NewValidationError("skill", skill, "unknown skill name")
	}
	return nil
}

// ValidateRegion checks an optional diary region against the known regions
func ValidateRegion(region string) error {
	if region == "" {
		return nil
	}
	if !IsDiaryRegion(region) {
		return oserr.NewValidationError("region", region, "unknown achievement diary region")
	}
	return nil
}

// ValidateQuestState checks an optional quest state filter
func ValidateQuestState(state string) error {
	if state == "" {
		return nil
	}
	if !IsQuestState(state) {
		return oserr.NewValidationError("state", state, "state must be NOT_STARTED, IN_PROGRESS or FINISHED")
	}
	return nil
}

// ValidateBankFilter checks the numeric bank filter bounds
func ValidateBankFilter(tab *int, minQuantity int64) error {
	if tab != nil && *tab < 0 {
		return oserr.NewValidationError("tab", strconv.Itoa(*tab), "tab index must be >= 0")
	}
	if minQuantity < 0 {
		return oserr.NewValidationError("min_quantity", strconv.FormatInt(minQuantity, 10), "min_quantity must be >= 0")
	}
	return nil
}
