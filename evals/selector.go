package evals

import (
	"regexp"
	"strings"
)

// KeywordSelector is a deterministic baseline selector. It applies the same
// disambiguation rules the tool descriptions teach an LLM: first-person
// questions go to the local get_my_* tools, price words go to the Grand
// Exchange, named third parties go to WikiSync, everything else falls back
// to wiki search. It exists so the suites can be validated without an LLM
// in the loop, and as a floor any real selector must beat.
type KeywordSelector struct{}

var usernamePattern = regexp.MustCompile(`(?i)\bplayer\s+"?([A-Za-z0-9 _-]{1,12})"?`)

// SelectTool implements ToolSelector.
func (KeywordSelector) SelectTool(input string) (string, map[string]any, error) {
	lower := strings.ToLower(input)
	args := map[string]any{}

	firstPerson := containsAny(lower, "my ", " my", "i have", "do i", "am i", "have i", "what am i")

	switch {
	case containsAny(lower, "which players", "who is synced", "synced players", "which characters"):
		return "list_synced_players", args, nil

	case firstPerson && containsAny(lower, "bank"):
		return "get_my_bank", args, nil
	case firstPerson && containsAny(lower, "inventory", "carrying"):
		return "get_my_inventory", args, nil
	case firstPerson && containsAny(lower, "wearing", "equipped", "equipment"):
		return "get_my_equipment", args, nil
	case firstPerson && containsAny(lower, "diary", "diaries"):
		return "get_my_diaries", args, nil
	case firstPerson && containsAny(lower, "combat achievement", "combat task"):
		return "get_my_combat_achievements", args, nil
	case firstPerson && containsAny(lower, "quest"):
		return "get_my_quests", args, nil
	case firstPerson && containsAny(lower, "level", "xp", "experience", "stats", "skill"):
		return "get_my_stats", args, nil
	case firstPerson && containsAny(lower, "account", "character", "profile", "overview"):
		return "get_my_profile", args, nil

	case containsAny(lower, "price", "cost", "how much is", "worth", "gp"):
		return "price", args, nil

	case usernamePattern.MatchString(input):
		if m := usernamePattern.FindStringSubmatch(input); m != nil {
			args["username"] = strings.TrimSpace(m[1])
		}
		return "player", args, nil

	case strings.HasPrefix(lower, "summarize ") || containsAny(lower, "summary of", "tell me about the page"):
		return "summary", args, nil

	default:
		args["query"] = input
		return "search", args, nil
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
