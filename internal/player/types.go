// Package player reads per-player sync documents written by the companion
// game-client plugin and answers structured queries over them.
package player

import "strings"

// EmptySlotID is the sentinel item id marking an empty equipment slot
const EmptySlotID = -1

// InventorySize is the fixed number of inventory slots
const InventorySize = 28

// SyncDocument is the authoritative per-player snapshot. It is created and
// overwritten wholesale by the companion plugin; this package only reads it.
type SyncDocument struct {
	SchemaVersion int                   `json:"schemaVersion"`
	LastUpdated   string                `json:"lastUpdated"`
	Player        Identity              `json:"player"`
	Skills        map[string]SkillEntry `json:"skills"`
	Bank          Bank                  `json:"bank"`
	Inventory     []InventorySlot       `json:"inventory"`
	Equipment     map[string]Item       `json:"equipment"`
	Quests        []Quest               `json:"quests"`
	Diaries       map[string]DiaryTiers `json:"achievementDiaries"`
	CombatTasks   CombatAchievements    `json:"combatAchievements"`
}

// Identity holds the player's in-game identity
type Identity struct {
	Username    string `json:"username"`
	CombatLevel int    `json:"combatLevel"`
	World       int    `json:"world"`
}

// SkillEntry is one skill's level and experience
type SkillEntry struct {
	Level      int   `json:"level"`
	Experience int64 `json:"experience"`
}

// Bank is the player's bank: total unique item count plus ordered tabs
type Bank struct {
	TotalItems int       `json:"totalItems"`
	Tabs       []BankTab `json:"tabs"`
}

// BankTab is one bank tab with its ordered items
type BankTab struct {
	Index int    `json:"index"`
	Items []Item `json:"items"`
}

// Item is an item stack
type Item struct {
	ItemID   int    `json:"itemId"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// InventorySlot is a slot-indexed inventory item
type InventorySlot struct {
	Slot int `json:"slot"`
	Item
}

// QuestState is the tri-state completion state of a quest
type QuestState string

const (
	QuestNotStarted QuestState = "NOT_STARTED"
	QuestInProgress QuestState = "IN_PROGRESS"
	QuestFinished   QuestState = "FINISHED"
)

// Quest is one quest with its internal and display names
type Quest struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	State       QuestState `json:"state"`
}

// Label returns the quest's display name, falling back to the internal name
func (q Quest) Label() string {
	if q.DisplayName != "" {
		return q.DisplayName
	}
	return q.Name
}

// DiaryTiers holds the four completion flags of one achievement diary region
type DiaryTiers struct {
	Easy   bool `json:"easy"`
	Medium bool `json:"medium"`
	Hard   bool `json:"hard"`
	Elite  bool `json:"elite"`
}

// CompletedCount returns how many of the four tiers are complete
func (d DiaryTiers) CompletedCount() int {
	n := 0
	for _, done := range []bool{d.Easy, d.Medium, d.Hard, d.Elite} {
		if done {
			n++
		}
	}
	return n
}

// CombatAchievements summarizes combat achievement progress. Only completed
// task names are tracked; incomplete tasks are never enumerated.
type CombatAchievements struct {
	EasyComplete   bool     `json:"easyComplete"`
	MediumComplete bool     `json:"mediumComplete"`
	HardComplete   bool     `json:"hardComplete"`
	EliteComplete  bool     `json:"eliteComplete"`
	CompletedTasks []string `json:"completedTasks"`
}

// OverallKey is the reserved skill key holding the aggregate total level
const OverallKey = "OVERALL"

// SkillNames enumerates the 23 OSRS skills in canonical order
var SkillNames = []string{
	"ATTACK", "STRENGTH", "DEFENCE", "RANGED", "PRAYER", "MAGIC",
	"RUNECRAFT", "HITPOINTS", "CRAFTING", "MINING", "SMITHING", "FISHING",
	"COOKING", "FIREMAKING", "WOODCUTTING", "AGILITY", "HERBLORE",
	"THIEVING", "FLETCHING", "SLAYER", "FARMING", "CONSTRUCTION", "HUNTER",
}

// DiaryRegions enumerates the achievement diary regions
var DiaryRegions = []string{
	"ARDOUGNE", "DESERT", "FALADOR", "FREMENNIK", "KANDARIN", "KARAMJA",
	"KOUREND_KEBOS", "LUMBRIDGE_DRAYNOR", "MORYTANIA", "VARROCK",
	"WESTERN_PROVINCES", "WILDERNESS",
}

// EquipmentSlots enumerates equipment slot names in display order
var EquipmentSlots = []string{
	"HEAD", "CAPE", "AMULET", "AMMO", "WEAPON", "BODY", "SHIELD",
	"LEGS", "GLOVES", "BOOTS", "RING",
}

// IsSkillName reports whether s names a known skill (case-insensitive).
// The reserved OVERALL key is not a skill.
func IsSkillName(s string) bool {
	upper := strings.ToUpper(s)
	for _, name := range SkillNames {
		if name == upper {
			return true
		}
	}
	return false
}

// IsDiaryRegion reports whether s names a known diary region
// (case-insensitive, spaces accepted for underscores).
func IsDiaryRegion(s string) bool {
	return canonicalRegion(s) != ""
}

// canonicalRegion maps free-text region input to its canonical key,
// or "" when unknown
func canonicalRegion(s string) string {
	upper := strings.ToUpper(strings.TrimSpace(s))
	upper = strings.ReplaceAll(upper, " ", "_")
	for _, region := range DiaryRegions {
		if region == upper {
			return region
		}
	}
	return ""
}

// IsQuestState reports whether s is a valid quest state (case-insensitive)
func IsQuestState(s string) bool {
	switch QuestState(strings.ToUpper(s)) {
	case QuestNotStarted, QuestInProgress, QuestFinished:
		return true
	}
	return false
}
