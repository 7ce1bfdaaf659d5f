package tools

// AllTools contains all tool specifications for the OSRS companion MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// WIKI TOOLS
	// ==========================================================================
	{
		Name:     "search",
		Method:   "Search",
		Title:    "Search OSRS Wiki",
		Category: "wiki",
		Source:   "wiki",
		Description: `Search the Old School RuneScape wiki for pages matching text.

USE WHEN: User asks about any OSRS item, monster, quest, skill or mechanic and you don't know the exact page title. "How do I kill Zulrah", "what drops the abyssal whip".

NOT FOR: Getting the content of a page you already know the title of (use summary). Not for prices (use price).

PARAMETERS:
- query: Search text (required)
- limit: Max results (default 10, max 50)

RETURNS: Page titles with snippets and total hit count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "summary",
		Method:   "Summary",
		Title:    "Wiki Page Summary",
		Category: "wiki",
		Source:   "wiki",
		Description: `Get the plain-text introduction of a specific OSRS wiki page.

USE WHEN: You know the exact page title, e.g. "Abyssal whip" or "Dragon Slayer II", and need its overview.

NOT FOR: Finding which page covers a topic (use search). Not for live prices (use price).

PARAMETERS:
- title: Exact wiki page title (required)

RETURNS: The page's introductory text, or found=false when no such page exists.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PRICE TOOLS
	// ==========================================================================
	{
		Name:     "price",
		Method:   "Price",
		Title:    "Grand Exchange Price",
		Category: "prices",
		Source:   "prices",
		Description: `Look up the latest Grand Exchange buy/sell price of a tradeable item by name.

USE WHEN: User asks "how much is X", "what's the GE price of X", "is X expensive".

NOT FOR: Item stats or descriptions (use search or summary). Untradeable items have no price.

PARAMETERS:
- item: Item name (required); exact match preferred, falls back to substring

RETURNS: Buy (instant-buy) and sell (instant-sell) price in gp with how long ago each side last traded, plus the resolved item name and id.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// REMOTE PLAYER TOOLS
	// ==========================================================================
	{
		Name:     "player",
		Method:   "Player",
		Title:    "Remote Player Data",
		Category: "player",
		Source:   "wikisync",
		Description: `Fetch another player's public data (quests, diaries, combat achievements, league tasks) from the WikiSync service.

USE WHEN: User asks about a player OTHER than themselves, or their own character is not locally synced.

NOT FOR: The user's own synced character (prefer the get_my_* tools, which are richer and local). Players who never installed the WikiSync plugin have no data.

PARAMETERS:
- username: OSRS username (required)
- force_refresh: Bypass the 1 hour cache (default false)

RETURNS: The raw WikiSync payload for the player, with cache freshness info, or found=false when the service has no data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LOCAL PLAYER TOOLS
	// ==========================================================================
	{
		Name:     "list_synced_players",
		Method:   "List",
		Title:    "List Synced Players",
		Category: "player",
		Source:   "local",
		Description: `List the OSRS characters with locally synced data on this machine.

USE WHEN: You need to know which usernames the get_my_* tools will work for, or a get_my_* call answered "not synced".

NOT FOR: Looking up arbitrary players (use player).

PARAMETERS: none

RETURNS: Sorted usernames and the sync directory path.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_profile",
		Method:   "Profile",
		Title:    "My Profile",
		Category: "player",
		Source:   "local",
		Description: `Compact overview of a locally synced character: combat level, world, total level, quest tallies and data freshness.

USE WHEN: User asks "how's my account", "give me an overview of my character", or as a first call before drilling into stats/bank/quests.

NOT FOR: Full skill listings (use get_my_stats) or item searches (use get_my_bank).

PARAMETERS:
- username: Synced player's username (required)

RETURNS: Identity, total level, quest counts and when the data was last updated.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_bank",
		Method:   "Bank",
		Title:    "My Bank",
		Category: "player",
		Source:   "local",
		Description: `Search and filter a locally synced character's bank.

USE WHEN: User asks "do I have X in my bank", "how many Y do I own", "what's in bank tab 2".

NOT FOR: Carried items (use get_my_inventory) or worn gear (use get_my_equipment).

PARAMETERS:
- username: Synced player's username (required)
- search: Item name substring, case-insensitive (optional)
- tab: Bank tab index (optional)
- min_quantity: Minimum stack size (optional)

All filters combine; an item must satisfy every one given.

RETURNS: Matching items with name, quantity and source tab.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_stats",
		Method:   "Stats",
		Title:    "My Stats",
		Category: "player",
		Source:   "local",
		Description: `Skill levels and experience for a locally synced character.

USE WHEN: User asks "what's my Slayer level", "show my stats", "how much xp do I have".

NOT FOR: Other players (use player).

PARAMETERS:
- username: Synced player's username (required)
- skill: Single skill name, e.g. "Slayer" (optional; omit for all skills)

RETURNS: Either one skill's level and xp, or all skills plus total level and total xp.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_quests",
		Method:   "Quests",
		Title:    "My Quests",
		Category: "player",
		Source:   "local",
		Description: `Quest progress for a locally synced character, filterable by state and name.

USE WHEN: User asks "which quests have I finished", "can I start X", "what quests am I mid-way through".

NOT FOR: Quest guides or requirements (use search/summary on the wiki).

PARAMETERS:
- username: Synced player's username (required)
- state: NOT_STARTED, IN_PROGRESS or FINISHED (optional)
- search: Quest name substring, case-insensitive (optional)

RETURNS: Matching quests with state, plus overall per-state tallies.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_equipment",
		Method:   "Equipment",
		Title:    "My Equipment",
		Category: "player",
		Source:   "local",
		Description: `Currently worn equipment of a locally synced character.

USE WHEN: User asks "what am I wearing", "what's in my weapon slot".

NOT FOR: Bank or inventory contents.

PARAMETERS:
- username: Synced player's username (required)

RETURNS: Occupied slots in display order with item names; empty slots are omitted.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_inventory",
		Method:   "Inventory",
		Title:    "My Inventory",
		Category: "player",
		Source:   "local",
		Description: `Carried inventory of a locally synced character.

USE WHEN: User asks "what am I carrying", "do I have free inventory space".

NOT FOR: Banked items (use get_my_bank).

PARAMETERS:
- username: Synced player's username (required)

RETURNS: Occupied slots with item names and quantities, plus the free slot count (of 28).`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_diaries",
		Method:   "Diaries",
		Title:    "My Achievement Diaries",
		Category: "player",
		Source:   "local",
		Description: `Achievement diary completion per region for a locally synced character.

USE WHEN: User asks "have I done the Varrock elite diary", "which diaries am I missing".

NOT FOR: Diary task lists or requirements (use search/summary on the wiki).

PARAMETERS:
- username: Synced player's username (required)
- region: Single region, e.g. "Varrock" or "Kourend Kebos" (optional; omit for all)

RETURNS: Easy/medium/hard/elite completion flags per region.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "get_my_combat_achievements",
		Method:   "Combat",
		Title:    "My Combat Achievements",
		Category: "player",
		Source:   "local",
		Description: `Combat achievement progress for a locally synced character.

USE WHEN: User asks "have I finished the hard combat achievements", "did I complete task X".

NOT FOR: Task requirements or rewards (use search/summary on the wiki). Incomplete tasks are not tracked and cannot be listed.

PARAMETERS:
- username: Synced player's username (required)
- search: Completed-task name substring, case-insensitive (optional)

RETURNS: Per-tier completion flags and the matching completed task names.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}

// ToolsBySource returns the tools backed by the given data source.
func ToolsBySource(source string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Source == source {
			specs = append(specs, spec)
		}
	}
	return specs
}

// ToolsByCategory returns the tools in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
