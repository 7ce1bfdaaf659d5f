package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/isaachansen/osrs-companion/internal/ge"
	"github.com/isaachansen/osrs-companion/internal/oserr"
)

// ListArgs has no parameters; listing takes none
type ListArgs struct{}

// ListResult enumerates locally synced players
type ListResult struct {
	Players []string `json:"players"`
	Count   int      `json:"count"`
	SyncDir string   `json:"sync_dir"`
	Message string   `json:"message,omitempty"`
}

// ListMCP handles the list_synced_players tool
func (s *Store) ListMCP(ctx context.Context, args ListArgs) (ListResult, error) {
	players, err := s.List()
	if err != nil {
		return ListResult{}, err
	}
	result := ListResult{Players: players, Count: len(players), SyncDir: s.dir}
	if len(players) == 0 {
		result.Message = "No synced players found. Install the companion plugin and log in to sync your character."
	}
	return result, nil
}

// UsernameArgs is the shared argument shape for tools that only need a player
type UsernameArgs struct {
	Username string `json:"username" jsonschema:"required" jsonschema_description:"OSRS username of a locally synced player"`
}

// ProfileResult is a compact overview of one synced player
type ProfileResult struct {
	Found       bool        `json:"found"`
	Message     string      `json:"message,omitempty"`
	Username    string      `json:"username,omitempty"`
	CombatLevel int         `json:"combat_level,omitempty"`
	World       int         `json:"world,omitempty"`
	TotalLevel  int         `json:"total_level,omitempty"`
	Quests      QuestCounts `json:"quests,omitempty"`
	LastUpdated string      `json:"last_updated,omitempty"`
	UpdatedAgo  string      `json:"updated_ago,omitempty"`
}

// ProfileMCP handles the get_my_profile tool
func (s *Store) ProfileMCP(ctx context.Context, args UsernameArgs) (ProfileResult, error) {
	doc, err := s.load(args.Username)
	if err != nil {
		return ProfileResult{}, err
	}
	if doc == nil {
		return ProfileResult{Found: false, Message: notSyncedMessage(args.Username)}, nil
	}
	result := ProfileResult{
		Found:       true,
		Username:    doc.Player.Username,
		CombatLevel: doc.Player.CombatLevel,
		World:       doc.Player.World,
		TotalLevel:  TotalLevel(doc.Skills),
		Quests:      CountQuests(doc.Quests),
		LastUpdated: doc.LastUpdated,
	}
	if t, parseErr := time.Parse(time.RFC3339, doc.LastUpdated); parseErr == nil {
		result.UpdatedAgo = ge.FormatTimeAgo(t, time.Now())
	}
	return result, nil
}

// BankArgs selects and filters a player's bank
type BankArgs struct {
	Username    string `json:"username" jsonschema:"required" jsonschema_description:"OSRS username of a locally synced player"`
	Search      string `json:"search,omitempty" jsonschema_description:"Only items whose name contains this text (case-insensitive)"`
	Tab         *int   `json:"tab,omitempty" jsonschema_description:"Only items from this bank tab index"`
	MinQuantity int64  `json:"min_quantity,omitempty" jsonschema_description:"Only items with at least this quantity"`
}

// BankResult lists matching bank items
type BankResult struct {
	Found      bool       `json:"found"`
	Message    string     `json:"message,omitempty"`
	TotalItems int        `json:"total_items,omitempty"`
	Matched    int        `json:"matched"`
	Items      []BankItem `json:"items"`
}

// BankMCP handles the get_my_bank tool
func (s *Store) BankMCP(ctx context.Context, args BankArgs) (BankResult, error) {
	if err := ValidateBankFilter(args.Tab, args.MinQuantity); err != nil {
		return BankResult{}, err
	}
	doc, err := s.load(args.Username)
	if err != nil {
		return BankResult{}, err
	}
	if doc == nil {
		return BankResult{Found: false, Message: notSyncedMessage(args.Username), Items: []BankItem{}}, nil
	}
	items := FilterBank(doc.Bank, BankFilter{
		NameContains: args.Search,
		MinQuantity:  args.MinQuantity,
		Tab:          args.Tab,
	})
	result := BankResult{
		Found:      true,
		TotalItems: doc.Bank.TotalItems,
		Matched:    len(items),
		Items:      items,
	}
	if len(items) == 0 {
		result.Message = "No bank items matched the given filters."
	}
	return result, nil
}

// StatsArgs selects a player's skills, optionally a single skill
type StatsArgs struct {
	Username string `json:"username" jsonschema:"required" jsonschema_description:"OSRS username of a locally synced player"`
	Skill    string `json:"skill,omitempty" jsonschema_description:"Single skill to look up, e.g. 'Slayer'; omit for all skills"`
}

// StatsResult reports skill levels and experience
type StatsResult struct {
	Found           bool         `json:"found"`
	Message         string       `json:"message,omitempty"`
	Skill           *NamedSkill  `json:"skill,omitempty"`
	Skills          []NamedSkill `json:"skills,omitempty"`
	TotalLevel      int          `json:"total_level,omitempty"`
	TotalExperience int64        `json:"total_experience,omitempty"`
}

// StatsMCP handles the get_my_stats tool
func (s *Store) StatsMCP(ctx context.Context, args StatsArgs) (StatsResult, error) {
	if err := ValidateSkill(args.Skill); err != nil {
		return StatsResult{}, err
	}
	doc, err := s.load(args.Username)
	if err != nil {
		return StatsResult{}, err
	}
	if doc == nil {
		return StatsResult{Found: false, Message: notSyncedMessage(args.Username)}, nil
	}
	if args.Skill != "" {
		entry, ok := SkillByName(doc.Skills, args.Skill)
		if !ok {
			return StatsResult{
				Found:   true,
				Message: fmt.Sprintf("No data recorded for skill %q.", args.Skill),
			}, nil
		}
		return StatsResult{
			Found: true,
			Skill: &NamedSkill{Name: args.Skill, Level: entry.Level, Experience: entry.Experience},
		}, nil
	}
	return StatsResult{
		Found:           true,
		Skills:          SortedSkills(doc.Skills),
		TotalLevel:      TotalLevel(doc.Skills),
		TotalExperience: TotalExperience(doc.Skills),
	}, nil
}

// QuestsArgs selects and filters a player's quest list
type QuestsArgs struct {
	Username string `json:"username" jsonschema:"required" jsonschema_description:"OSRS username of a locally synced player"`
	State    string `json:"state,omitempty" jsonschema_description:"Only quests in this state: NOT_STARTED, IN_PROGRESS or FINISHED"`
	Search   string `json:"search,omitempty" jsonschema_description:"Only quests whose name contains this text (case-insensitive)"`
}

// QuestsResult lists matching quests with state tallies
type QuestsResult struct {
	Found   bool        `json:"found"`
	Message string      `json:"message,omitempty"`
	Counts  QuestCounts `json:"counts,omitempty"`
	Matched int         `json:"matched"`
	Quests  []Quest     `json:"quests"`
}

// QuestsMCP handles the get_my_quests tool
func (s *Store) QuestsMCP(ctx context.Context, args QuestsArgs) (QuestsResult, error) {
	if err := ValidateQuestState(args.State); err != nil {
		return QuestsResult{}, err
	}
	doc, err := s.load(args.Username)
	if err != nil {
		return QuestsResult{}, err
	}
	if doc == nil {
		return QuestsResult{Found: false, Message: notSyncedMessage(args.Username), Quests: []Quest{}}, nil
	}
	var state QuestState
	if args.State != "" {
		state = QuestState(canonicalState(args.State))
	}
	quests := FilterQuests(doc.Quests, QuestFilter{State: state, NameContains: args.Search})
	result := QuestsResult{
		Found:   true,
		Counts:  CountQuests(doc.Quests),
		Matched: len(quests),
		Quests:  quests,
	}
	if len(quests) == 0 {
		result.Message = "No quests matched the given filters."
	}
	return result, nil
}

// EquipmentResult lists the player's worn equipment
type EquipmentResult struct {
	Found    bool           `json:"found"`
	Message  string         `json:"message,omitempty"`
	Equipped []EquippedItem `json:"equipped"`
}

// EquipmentMCP handles the get_my_equipment tool
func (s *Store) EquipmentMCP(ctx context.Context, args UsernameArgs) (EquipmentResult, error) {
	doc, err := s.load(args.Username)
	if err != nil {
		return EquipmentResult{}, err
	}
	if doc == nil {
		return EquipmentResult{Found: false, Message: notSyncedMessage(args.Username), Equipped: []EquippedItem{}}, nil
	}
	equipped := EquippedItems(doc.Equipment)
	result := EquipmentResult{Found: true, Equipped: equipped}
	if len(equipped) == 0 {
		result.Message = "Nothing is currently equipped."
	}
	return result, nil
}

// InventoryResult lists the player's occupied inventory slots
type InventoryResult struct {
	Found     bool            `json:"found"`
	Message   string          `json:"message,omitempty"`
	Items     []InventorySlot `json:"items"`
	FreeSlots int             `json:"free_slots,omitempty"`
}

// InventoryMCP handles the get_my_inventory tool
func (s *Store) InventoryMCP(ctx context.Context, args UsernameArgs) (InventoryResult, error) {
	doc, err := s.load(args.Username)
	if err != nil {
		return InventoryResult{}, err
	}
	if doc == nil {
		return InventoryResult{Found: false, Message: notSyncedMessage(args.Username), Items: []InventorySlot{}}, nil
	}
	items, free := OccupiedInventory(doc.Inventory)
	result := InventoryResult{Found: true, Items: items, FreeSlots: free}
	if len(items) == 0 {
		result.Message = "The inventory is empty."
	}
	return result, nil
}

// DiariesArgs selects a player's achievement diary progress
type DiariesArgs struct {
	Username string `json:"username" jsonschema:"required" jsonschema_description:"OSRS username of a locally synced player"`
	Region   string `json:"region,omitempty" jsonschema_description:"Single diary region, e.g. 'Varrock' or 'Kourend Kebos'; omit for all regions"`
}

// DiariesResult reports per-region diary tier completion
type DiariesResult struct {
	Found   bool            `json:"found"`
	Message string          `json:"message,omitempty"`
	Diaries []DiaryProgress `json:"diaries"`
}

// DiariesMCP handles the get_my_diaries tool
func (s *Store) DiariesMCP(ctx context.Context, args DiariesArgs) (DiariesResult, error) {
	if err := ValidateRegion(args.Region); err != nil {
		return DiariesResult{}, err
	}
	doc, err := s.load(args.Username)
	if err != nil {
		return DiariesResult{}, err
	}
	if doc == nil {
		return DiariesResult{Found: false, Message: notSyncedMessage(args.Username), Diaries: []DiaryProgress{}}, nil
	}
	diaries := DiaryProgressFor(doc.Diaries, args.Region)
	result := DiariesResult{Found: true, Diaries: diaries}
	if len(diaries) == 0 {
		if args.Region != "" {
			result.Message = fmt.Sprintf("No diary progress recorded for region %q.", args.Region)
		} else {
			result.Message = "No achievement diary progress recorded."
		}
	}
	return result, nil
}

// CombatArgs selects a player's combat achievement progress
type CombatArgs struct {
	Username string `json:"username" jsonschema:"required" jsonschema_description:"OSRS username of a locally synced player"`
	Search   string `json:"search,omitempty" jsonschema_description:"Only completed tasks whose name contains this text (case-insensitive)"`
}

// CombatResult reports combat achievement tiers and completed tasks
type CombatResult struct {
	Found          bool     `json:"found"`
	Message        string   `json:"message,omitempty"`
	EasyComplete   bool     `json:"easy_complete"`
	MediumComplete bool     `json:"medium_complete"`
	HardComplete   bool     `json:"hard_complete"`
	EliteComplete  bool     `json:"elite_complete"`
	Matched        int      `json:"matched"`
	CompletedTasks []string `json:"completed_tasks"`
}

// CombatMCP handles the get_my_combat_achievements tool
func (s *Store) CombatMCP(ctx context.Context, args CombatArgs) (CombatResult, error) {
	doc, err := s.load(args.Username)
	if err != nil {
		return CombatResult{}, err
	}
	if doc == nil {
		return CombatResult{Found: false, Message: notSyncedMessage(args.Username), CompletedTasks: []string{}}, nil
	}
	tasks := FilterCompletedTasks(doc.CombatTasks, args.Search)
	result := CombatResult{
		Found:          true,
		EasyComplete:   doc.CombatTasks.EasyComplete,
		MediumComplete: doc.CombatTasks.MediumComplete,
		HardComplete:   doc.CombatTasks.HardComplete,
		EliteComplete:  doc.CombatTasks.EliteComplete,
		Matched:        len(tasks),
		CompletedTasks: tasks,
	}
	if len(tasks) == 0 && args.Search != "" {
		result.Message = "No completed combat tasks matched the search."
	}
	return result, nil
}

// load validates the username and loads the document, translating
// NotFoundError into (nil, nil) so callers can answer with a friendly
// not-synced result instead of a tool error.
func (s *Store) load(username string) (*SyncDocument, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	doc, err := s.Load(username)
	if err != nil {
		if oserr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func notSyncedMessage(username string) string {
	return fmt.Sprintf("No synced data for %q. Use list_synced_players to see who is available, or log in with the companion plugin installed.", username)
}

// canonicalState uppercases a quest state filter to its enum form
func canonicalState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
