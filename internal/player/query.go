package player

import (
	"sort"
	"strings"
)

// BankFilter narrows a bank listing. All set fields must match (filters
// are conjunctive); zero values mean "no constraint".
type BankFilter struct {
	NameContains string
	MinQuantity  int64
	Tab          *int
}

// BankItem is one bank item annotated with its tab index
type BankItem struct {
	Item
	Tab int `json:"tab"`
}

// FilterBank flattens the bank's tabs and applies filter. Item order
// follows tab order then in-tab order.
func FilterBank(bank Bank, filter BankFilter) []BankItem {
	needle := strings.ToLower(filter.NameContains)
	matched := []BankItem{}
	for _, tab := range bank.Tabs {
		if filter.Tab != nil && tab.Index != *filter.Tab {
			continue
		}
		for _, item := range tab.Items {
			if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
				continue
			}
			if item.Quantity < filter.MinQuantity {
				continue
			}
			matched = append(matched, BankItem{Item: item, Tab: tab.Index})
		}
	}
	return matched
}

// QuestFilter narrows a quest listing. Both fields are conjunctive;
// zero values mean "no constraint".
type QuestFilter struct {
	State        QuestState
	NameContains string
}

// FilterQuests applies filter to quests, preserving document order
func FilterQuests(quests []Quest, filter QuestFilter) []Quest {
	needle := strings.ToLower(filter.NameContains)
	matched := []Quest{}
	for _, quest := range quests {
		if filter.State != "" && quest.State != filter.State {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(quest.Label()), needle) {
			continue
		}
		matched = append(matched, quest)
	}
	return matched
}

// QuestCounts tallies quests per state
type QuestCounts struct {
	NotStarted int `json:"notStarted"`
	InProgress int `json:"inProgress"`
	Finished   int `json:"finished"`
	Total      int `json:"total"`
}

// CountQuests tallies quests by state
func CountQuests(quests []Quest) QuestCounts {
	counts := QuestCounts{Total: len(quests)}
	for _, quest := range quests {
		switch quest.State {
		case QuestNotStarted:
			counts.NotStarted++
		case QuestInProgress:
			counts.InProgress++
		case QuestFinished:
			counts.Finished++
		}
	}
	return counts
}

// DiaryProgress is one region's diary completion summary
type DiaryProgress struct {
	Region string     `json:"region"`
	Tiers  DiaryTiers `json:"tiers"`
	Done   int        `json:"completedTiers"`
}

// DiaryProgressFor summarizes diary progress, one entry per region present
// in the document, sorted by region name. When region is non-empty only
// that region (canonicalized) is returned.
func DiaryProgressFor(diaries map[string]DiaryTiers, region string) []DiaryProgress {
	want := ""
	if region != "" {
		want = canonicalRegion(region)
	}

	progress := []DiaryProgress{}
	for name, tiers := range diaries {
		if want != "" && strings.ToUpper(name) != want {
			continue
		}
		progress = append(progress, DiaryProgress{
			Region: name,
			Tiers:  tiers,
			Done:   tiers.CompletedCount(),
		})
	}
	sort.Slice(progress, func(i, j int) bool {
		return progress[i].Region < progress[j].Region
	})
	return progress
}

// SkillByName looks up one skill case-insensitively.
// The OVERALL aggregate key is not addressable here.
func SkillByName(skills map[string]SkillEntry, name string) (SkillEntry, bool) {
	upper := strings.ToUpper(name)
	if upper == OverallKey {
		return SkillEntry{}, false
	}
	for key, entry := range skills {
		if strings.ToUpper(key) == upper {
			return entry, true
		}
	}
	return SkillEntry{}, false
}

// TotalLevel returns the player's total level: the OVERALL entry when the
// document carries one, otherwise the sum of individual skill levels.
func TotalLevel(skills map[string]SkillEntry) int {
	if overall, ok := skills[OverallKey]; ok {
		return overall.Level
	}
	total := 0
	for key, entry := range skills {
		if strings.ToUpper(key) == OverallKey {
			return entry.Level
		}
		total += entry.Level
	}
	return total
}

// TotalExperience sums experience across all skills, excluding the
// OVERALL aggregate to avoid double counting.
func TotalExperience(skills map[string]SkillEntry) int64 {
	var total int64
	for key, entry := range skills {
		if strings.ToUpper(key) == OverallKey {
			continue
		}
		total += entry.Experience
	}
	return total
}

// SortedSkills returns the document's skills in canonical skill order,
// dropping the OVERALL aggregate. Skills absent from the document are
// skipped rather than zero-filled.
func SortedSkills(skills map[string]SkillEntry) []NamedSkill {
	byUpper := make(map[string]SkillEntry, len(skills))
	for key, entry := range skills {
		byUpper[strings.ToUpper(key)] = entry
	}
	ordered := make([]NamedSkill, 0, len(SkillNames))
	for _, name := range SkillNames {
		if entry, ok := byUpper[name]; ok {
			ordered = append(ordered, NamedSkill{Name: name, Level: entry.Level, Experience: entry.Experience})
		}
	}
	return ordered
}

// NamedSkill is a skill entry with its name attached, for ordered output
type NamedSkill struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int64  `json:"experience"`
}

// EquippedItems returns equipment in display slot order, skipping empty
// slots (the EmptySlotID sentinel) and slots absent from the document.
func EquippedItems(equipment map[string]Item) []EquippedItem {
	byUpper := make(map[string]Item, len(equipment))
	for slot, item := range equipment {
		byUpper[strings.ToUpper(slot)] = item
	}
	equipped := []EquippedItem{}
	for _, slot := range EquipmentSlots {
		item, ok := byUpper[slot]
		if !ok || item.ItemID == EmptySlotID {
			continue
		}
		equipped = append(equipped, EquippedItem{Slot: slot, Item: item})
	}
	return equipped
}

// EquippedItem is one occupied equipment slot
type EquippedItem struct {
	Slot string `json:"slot"`
	Item
}

// FilterCompletedTasks returns the completed combat achievement task names
// containing search (case-insensitive). Empty search returns all of them.
// Incomplete tasks are not tracked and cannot be listed.
func FilterCompletedTasks(ca CombatAchievements, search string) []string {
	if search == "" {
		return append([]string{}, ca.CompletedTasks...)
	}
	needle := strings.ToLower(search)
	matched := []string{}
	for _, task := range ca.CompletedTasks {
		if strings.Contains(strings.ToLower(task), needle) {
			matched = append(matched, task)
		}
	}
	return matched
}

// OccupiedInventory returns the occupied inventory slots in slot order,
// along with the number of free slots.
func OccupiedInventory(inventory []InventorySlot) ([]InventorySlot, int) {
	occupied := []InventorySlot{}
	for _, slot := range inventory {
		if slot.ItemID == EmptySlotID || (slot.ItemID == 0 && slot.Name == "") {
			continue
		}
		occupied = append(occupied, slot)
	}
	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].Slot < occupied[j].Slot
	})
	return occupied, InventorySize - len(occupied)
}
