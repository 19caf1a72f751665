package auction

import (
	"context"
	"fmt"
	"math/rand/v2"

	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/models"
	"auction-backend/internal/store"
)

// List limits per call site
const (
	auctionListLimit  = 100
	teamListLimit     = 200
	overviewTeamLimit = 500
)

// drawnBasePrice is the fixed base price attached to every drawn player
const drawnBasePrice = 100

// playerRoles is the fixed role table; a drawn number maps to
// playerRoles[number % len(playerRoles)].
var playerRoles = []string{"Batter", "Bowler", "All-Rounder", "Wicket-Keeper"}

// TeamOverview is one team's bidding position within an auction
type TeamOverview struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Captain      *string          `json:"captain"`
	BudgetLeft   int              `json:"budget_left"`
	PlayersCount int              `json:"players_count"`
	Players      []map[string]any `json:"players"`
	MaxBid       int              `json:"max_bid"`
}

// AuctionOverview is the auction plus the bidding position of every team
type AuctionOverview struct {
	Auction models.Auction `json:"auction"`
	Teams   []TeamOverview `json:"teams"`
}

// DrawResult is a drawn number with its synthesized placeholder player
type DrawResult struct {
	Number int           `json:"number"`
	Player models.Player `json:"player"`
}

// AuctionService implements the domain operations for running a live
// sports auction on top of a document store.
type AuctionService struct {
	store store.DocumentStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(s store.DocumentStore) *AuctionService {
	return &AuctionService{
		store: s,
	}
}

// CreateAuction creates an auction record and its teams. Teams are named
// "Team 1".."Team N" per settings.teams_count, each starting with
// settings.budget_per_team. There is no rollback: a store failure partway
// leaves the auction with fewer teams than configured.
func (s *AuctionService) CreateAuction(ctx context.Context, name, category string, settings map[string]any) (string, error) {
	if settings == nil {
		settings = map[string]any{}
	}

	doc, err := s.store.Create(ctx, store.CollectionAuction, map[string]any{
		"name":     name,
		"category": category,
		"settings": settings,
	})
	if err != nil {
		return "", fmt.Errorf("service: failed to create auction %q: %w", name, err)
	}
	auctionID, _ := doc["id"].(string)

	teamsCount := models.IntSetting(settings, models.SettingTeamsCount)
	budgetPerTeam := models.IntSetting(settings, models.SettingBudgetPerTeam)

	for i := 1; i <= teamsCount; i++ {
		_, err := s.store.Create(ctx, store.CollectionTeam, map[string]any{
			"auction_id":  auctionID,
			"name":        fmt.Sprintf("Team %d", i),
			"captain":     nil,
			"budget_left": budgetPerTeam,
			"players":     []map[string]any{},
		})
		if err != nil {
			return "", fmt.Errorf("service: failed to create team %d of %d for auction %s: %w", i, teamsCount, auctionID, err)
		}
	}

	return auctionID, nil
}

// ListAuctions returns all auctions, up to the list limit
func (s *AuctionService) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	docs, err := s.store.List(ctx, store.CollectionAuction, map[string]any{}, auctionListLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	auctions := make([]models.Auction, 0, len(docs))
	for _, doc := range docs {
		auctions = append(auctions, models.AuctionFromDoc(doc))
	}
	return auctions, nil
}

// GetTeams returns the teams belonging to an auction
func (s *AuctionService) GetTeams(ctx context.Context, auctionID string) ([]models.Team, error) {
	docs, err := s.store.List(ctx, store.CollectionTeam, map[string]any{"auction_id": auctionID}, teamListLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get teams for auction %s: %w", auctionID, err)
	}

	teams := make([]models.Team, 0, len(docs))
	for _, doc := range docs {
		teams = append(teams, models.TeamFromDoc(doc))
	}
	return teams, nil
}

// Overview returns the auction and, per team, its current bidding position
// including the maximum bid it can place now while still affording the base
// price for every remaining mandatory roster slot.
func (s *AuctionService) Overview(ctx context.Context, auctionID string) (AuctionOverview, error) {
	auctionDocs, err := s.store.List(ctx, store.CollectionAuction, map[string]any{"id": auctionID}, 1)
	if err != nil {
		return AuctionOverview{}, fmt.Errorf("service: failed to look up auction %s: %w", auctionID, err)
	}
	if len(auctionDocs) == 0 {
		return AuctionOverview{}, fmt.Errorf("service: overview for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	auction := models.AuctionFromDoc(auctionDocs[0])

	teamDocs, err := s.store.List(ctx, store.CollectionTeam, map[string]any{"auction_id": auctionID}, overviewTeamLimit)
	if err != nil {
		return AuctionOverview{}, fmt.Errorf("service: failed to load teams for auction %s: %w", auctionID, err)
	}

	basePrice := models.IntSetting(auction.Settings, models.SettingBasePrice)
	captainReserved := models.IntSetting(auction.Settings, models.SettingCaptainReserved)
	playersPerTeam := models.IntSetting(auction.Settings, models.SettingPlayersPerTeam)

	teams := make([]TeamOverview, 0, len(teamDocs))
	for _, doc := range teamDocs {
		team := models.TeamFromDoc(doc)
		playersNeeded := max(playersPerTeam-len(team.Players), 0)
		teams = append(teams, TeamOverview{
			ID:           team.ID,
			Name:         team.Name,
			Captain:      team.Captain,
			BudgetLeft:   team.BudgetLeft,
			PlayersCount: len(team.Players),
			Players:      team.Players,
			MaxBid:       s.MaxBid(team.BudgetLeft, playersNeeded, basePrice, captainReserved),
		})
	}

	return AuctionOverview{Auction: auction, Teams: teams}, nil
}

// DrawPlayer draws one uniformly random number in [minNumber, maxNumber]
// and synthesizes a placeholder player with a deterministic role for that
// number. Nothing is persisted, so repeated draws can repeat numbers; the
// caller tracks exclusions.
func (s *AuctionService) DrawPlayer(minNumber, maxNumber int) DrawResult {
	number := minNumber
	if maxNumber > minNumber {
		number = minNumber + rand.IntN(maxNumber-minNumber+1)
	}

	return DrawResult{
		Number: number,
		Player: models.Player{
			ID:        fmt.Sprintf("%d", number),
			Name:      fmt.Sprintf("Player %d", number),
			Role:      playerRoles[number%len(playerRoles)],
			BasePrice: drawnBasePrice,
		},
	}
}

// MaxBid computes the largest bid a team may place now: its budget minus
// the captain reserve, minus the base price for every mandatory slot still
// to be filled after the current pick. Never negative for non-negative
// inputs.
func (s *AuctionService) MaxBid(budgetLeft, playersNeeded, basePrice, captainReserved int) int {
	slotsAfter := max(playersNeeded-1, 0)
	requiredMin := slotsAfter * basePrice
	effective := max(budgetLeft-captainReserved, 0)
	return max(effective-requiredMin, 0)
}

// ClosePurchase records a won bid: the team is resolved by auction id plus
// team name (the close-bid wire contract addresses teams by name), its
// budget is decremented clamped at zero, and the player record is appended
// with the winning amount as bought_for. The read-modify-write is not
// atomic; concurrent purchases against the same team can lose an update.
func (s *AuctionService) ClosePurchase(ctx context.Context, auctionID, teamName string, amount int, player map[string]any) (bool, error) {
	teamDocs, err := s.store.List(ctx, store.CollectionTeam, map[string]any{"auction_id": auctionID, "name": teamName}, 1)
	if err != nil {
		return false, fmt.Errorf("service: failed to look up team %q in auction %s: %w", teamName, auctionID, err)
	}
	if len(teamDocs) == 0 {
		return false, fmt.Errorf("service: close purchase for team %q in auction %s: %w", teamName, auctionID, auctionerrors.ErrTeamNotFound)
	}
	team := models.TeamFromDoc(teamDocs[0])

	newBudget := max(team.BudgetLeft-amount, 0)

	bought := make(map[string]any, len(player)+1)
	for k, v := range player {
		bought[k] = v
	}
	bought["bought_for"] = amount

	updated, err := s.store.Update(ctx, store.CollectionTeam, team.ID, map[string]any{
		"budget_left": newBudget,
		"players":     append(team.Players, bought),
	})
	if err != nil {
		return false, fmt.Errorf("service: failed to record purchase for team %s: %w", team.ID, err)
	}
	return updated != nil, nil
}

// HealthCheck reports whether the document store is reachable. Store
// failures are downgraded to a false result rather than propagated.
func (s *AuctionService) HealthCheck(ctx context.Context) bool {
	return s.store.Ping(ctx) == nil
}
