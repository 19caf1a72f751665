package models

import "time"

// Settings keys interpreted by the auction service. The settings mapping
// itself is opaque to the store; missing or non-numeric keys read as zero.
const (
	SettingTeamsCount      = "teams_count"
	SettingBudgetPerTeam   = "budget_per_team"
	SettingBasePrice       = "base_price"
	SettingCaptainReserved = "captain_reserved"
	SettingPlayersPerTeam  = "players_per_team"
)

// Auction represents one organized auction event
type Auction struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Settings  map[string]any `json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Team represents a roster-building entity belonging to one auction.
// Players holds purchase records: arbitrary caller-supplied fields plus
// the bought_for amount appended at purchase time.
type Team struct {
	ID         string           `json:"id"`
	AuctionID  string           `json:"auction_id"`
	Name       string           `json:"name"`
	Captain    *string          `json:"captain"`
	BudgetLeft int              `json:"budget_left"`
	Players    []map[string]any `json:"players"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Player is a synthesized candidate produced by a draw; it is not persisted.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	BasePrice int    `json:"base_price"`
}

// AuctionFromDoc decodes a gateway document into an Auction
func AuctionFromDoc(doc map[string]any) Auction {
	settings, _ := doc["settings"].(map[string]any)
	return Auction{
		ID:        asString(doc["id"]),
		Name:      asString(doc["name"]),
		Category:  asString(doc["category"]),
		Settings:  settings,
		CreatedAt: asTime(doc["created_at"]),
		UpdatedAt: asTime(doc["updated_at"]),
	}
}

// TeamFromDoc decodes a gateway document into a Team
func TeamFromDoc(doc map[string]any) Team {
	var captain *string
	if s, ok := doc["captain"].(string); ok {
		captain = &s
	}
	return Team{
		ID:         asString(doc["id"]),
		AuctionID:  asString(doc["auction_id"]),
		Name:       asString(doc["name"]),
		Captain:    captain,
		BudgetLeft: asInt(doc["budget_left"]),
		Players:    asPlayers(doc["players"]),
		CreatedAt:  asTime(doc["created_at"]),
		UpdatedAt:  asTime(doc["updated_at"]),
	}
}

// IntSetting reads an integer settings value, defaulting to 0 when the key
// is missing or not numeric.
func IntSetting(settings map[string]any, key string) int {
	if settings == nil {
		return 0
	}
	return asInt(settings[key])
}

// asInt coerces the numeric representations produced by the JSON and BSON
// decoders into an int.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asTime(v any) time.Time {
	t, _ := v.(time.Time)
	return t
}

func asPlayers(v any) []map[string]any {
	players := []map[string]any{}
	switch list := v.(type) {
	case []map[string]any:
		players = append(players, list...)
	case []any:
		for _, item := range list {
			if p, ok := item.(map[string]any); ok {
				players = append(players, p)
			}
		}
	}
	return players
}
