package player

import "testing"

// fixtureDoc is a small but fully populated sync document shared by the
// store, query and tool tests.
func fixtureDoc() SyncDocument {
	return SyncDocument{
		SchemaVersion: 1,
		LastUpdated:   "2026-08-30T12:00:00Z",
		Player:        Identity{Username: "Lynx Titan", CombatLevel: 126, World: 302},
		Skills: map[string]SkillEntry{
			"ATTACK":  {Level: 99, Experience: 200000000},
			"SLAYER":  {Level: 99, Experience: 200000000},
			"OVERALL": {Level: 2277, Experience: 4600000000},
		},
		Bank: Bank{
			TotalItems: 4,
			Tabs: []BankTab{
				{Index: 0, Items: []Item{
					{ItemID: 892, Name: "Rune arrow", Quantity: 5000},
					{ItemID: 385, Name: "Shark", Quantity: 120},
				}},
				{Index: 1, Items: []Item{
					{ItemID: 1515, Name: "Yew logs", Quantity: 30},
					{ItemID: 11802, Name: "Armadyl godsword", Quantity: 1},
				}},
			},
		},
		Inventory: []InventorySlot{
			{Slot: 0, Item: Item{ItemID: 385, Name: "Shark", Quantity: 1}},
			{Slot: 3, Item: Item{ItemID: 2434, Name: "Prayer potion(4)", Quantity: 1}},
		},
		Equipment: map[string]Item{
			"WEAPON": {ItemID: 4151, Name: "Abyssal whip", Quantity: 1},
			"HEAD":   {ItemID: EmptySlotID},
		},
		Quests: []Quest{
			{Name: "COOKS_ASSISTANT", DisplayName: "Cook's Assistant", State: QuestFinished},
			{Name: "DRAGON_SLAYER_I", DisplayName: "Dragon Slayer I", State: QuestInProgress},
			{Name: "MONKEY_MADNESS_I", DisplayName: "Monkey Madness I", State: QuestNotStarted},
		},
		Diaries: map[string]DiaryTiers{
			"VARROCK":   {Easy: true, Medium: true},
			"KARAMJA":   {Easy: true},
			"MORYTANIA": {},
		},
		CombatTasks: CombatAchievements{
			EasyComplete:   true,
			CompletedTasks: []string{"Noxious Foe", "A Slow Death", "Fight Caves Veteran"},
		},
	}
}

func intPtr(i int) *int { return &i }

func TestFilterBank(t *testing.T) {
	bank := fixtureDoc().Bank

	tests := []struct {
		name   string
		filter BankFilter
		want   []string
	}{
		{"no filter", BankFilter{}, []string{"Rune arrow", "Shark", "Yew logs", "Armadyl godsword"}},
		{"name substring ci", BankFilter{NameContains: "rune"}, []string{"Rune arrow"}},
		{"min quantity", BankFilter{MinQuantity: 100}, []string{"Rune arrow", "Shark"}},
		{"tab only", BankFilter{Tab: intPtr(1)}, []string{"Yew logs", "Armadyl godsword"}},
		{"conjunctive", BankFilter{NameContains: "a", Tab: intPtr(0), MinQuantity: 1000}, []string{"Rune arrow"}},
		{"no match", BankFilter{NameContains: "bandos"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBank(bank, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items, want %d: %v", len(got), len(tt.want), got)
			}
			for i, item := range got {
				if item.Name != tt.want[i] {
					t.Errorf("item[%d] = %q, want %q", i, item.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFilterBank_TagsSourceTab(t *testing.T) {
	got := FilterBank(fixtureDoc().Bank, BankFilter{NameContains: "yew"})
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].Tab != 1 {
		t.Errorf("tab = %d, want 1", got[0].Tab)
	}
}

func TestFilterQuests(t *testing.T) {
	quests := fixtureDoc().Quests

	finished := FilterQuests(quests, QuestFilter{State: QuestFinished})
	if len(finished) != 1 || finished[0].DisplayName != "Cook's Assistant" {
		t.Errorf("finished = %v", finished)
	}

	byName := FilterQuests(quests, QuestFilter{NameContains: "dragon"})
	if len(byName) != 1 || byName[0].DisplayName != "Dragon Slayer I" {
		t.Errorf("byName = %v", byName)
	}

	// both constraints must hold
	both := FilterQuests(quests, QuestFilter{State: QuestFinished, NameContains: "dragon"})
	if len(both) != 0 {
		t.Errorf("conjunctive filter matched %v", both)
	}
}

func TestCountQuests(t *testing.T) {
	counts := CountQuests(fixtureDoc().Quests)
	if counts.Finished != 1 || counts.InProgress != 1 || counts.NotStarted != 1 || counts.Total != 3 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestDiaryProgressFor(t *testing.T) {
	diaries := fixtureDoc().Diaries

	all := DiaryProgressFor(diaries, "")
	if len(all) != 3 {
		t.Fatalf("got %d regions, want 3", len(all))
	}
	// sorted by region name
	if all[0].Region != "KARAMJA" || all[1].Region != "MORYTANIA" || all[2].Region != "VARROCK" {
		t.Errorf("order = %v", all)
	}
	if all[2].Done != 2 {
		t.Errorf("varrock done = %d, want 2", all[2].Done)
	}

	one := DiaryProgressFor(diaries, "varrock")
	if len(one) != 1 || one[0].Region != "VARROCK" {
		t.Errorf("single region = %v", one)
	}

	absent := DiaryProgressFor(diaries, "WILDERNESS")
	if len(absent) != 0 {
		t.Errorf("absent region = %v", absent)
	}
}

func TestSkillByName(t *testing.T) {
	skills := fixtureDoc().Skills

	entry, ok := SkillByName(skills, "slayer")
	if !ok || entry.Level != 99 {
		t.Errorf("slayer = %+v ok=%v", entry, ok)
	}
	if _, ok := SkillByName(skills, "sailing"); ok {
		t.Error("unknown skill should not resolve")
	}
	if _, ok := SkillByName(skills, "overall"); ok {
		t.Error("OVERALL aggregate should not resolve as a skill")
	}
}

func TestTotalLevel(t *testing.T) {
	if got := TotalLevel(fixtureDoc().Skills); got != 2277 {
		t.Errorf("with OVERALL: total = %d, want 2277", got)
	}

	noOverall := map[string]SkillEntry{
		"ATTACK": {Level: 70},
		"MAGIC":  {Level: 80},
	}
	if got := TotalLevel(noOverall); got != 150 {
		t.Errorf("without OVERALL: total = %d, want 150", got)
	}
}

func TestTotalExperience_ExcludesOverall(t *testing.T) {
	if got := TotalExperience(fixtureDoc().Skills); got != 400000000 {
		t.Errorf("total xp = %d, want 400000000", got)
	}
}

func TestSortedSkills(t *testing.T) {
	skills := SortedSkills(fixtureDoc().Skills)
	if len(skills) != 2 {
		t.Fatalf("got %d skills, want 2 (OVERALL dropped, absent skipped)", len(skills))
	}
	// ATTACK precedes SLAYER in canonical order
	if skills[0].Name != "ATTACK" || skills[1].Name != "SLAYER" {
		t.Errorf("order = %v", skills)
	}
}

func TestEquippedItems_SkipsEmptySentinel(t *testing.T) {
	equipped := EquippedItems(fixtureDoc().Equipment)
	if len(equipped) != 1 {
		t.Fatalf("got %v", equipped)
	}
	if equipped[0].Slot != "WEAPON" || equipped[0].Name != "Abyssal whip" {
		t.Errorf("equipped = %+v", equipped[0])
	}
}

func TestOccupiedInventory(t *testing.T) {
	items, free := OccupiedInventory(fixtureDoc().Inventory)
	if len(items) != 2 {
		t.Fatalf("got %v", items)
	}
	if items[0].Slot != 0 || items[1].Slot != 3 {
		t.Errorf("slot order = %v", items)
	}
	if free != 26 {
		t.Errorf("free = %d, want 26", free)
	}
}

func TestFilterCompletedTasks(t *testing.T) {
	ca := fixtureDoc().CombatTasks

	all := FilterCompletedTasks(ca, "")
	if len(all) != 3 {
		t.Errorf("all = %v", all)
	}
	matched := FilterCompletedTasks(ca, "slow")
	if len(matched) != 1 || matched[0] != "A Slow Death" {
		t.Errorf("matched = %v", matched)
	}
	if got := FilterCompletedTasks(ca, "zuk"); len(got) != 0 {
		t.Errorf("no-match = %v", got)
	}
}
