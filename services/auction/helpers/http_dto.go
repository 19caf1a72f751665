package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	Name     string         `json:"name" binding:"required"`
	Category string         `json:"category"`
	Settings map[string]any `json:"settings"`
}

type CreateAuctionResponse struct {
	AuctionID string `json:"auction_id"`
}

// DrawPlayerRequest bounds are pointers so that omitted fields can fall
// back to the API defaults (1 and 99999) instead of zero.
type DrawPlayerRequest struct {
	MinNumber *int `json:"min_number" binding:"omitempty,gte=0"`
	MaxNumber *int `json:"max_number" binding:"omitempty,gte=0"`
}

type MaxBidRequest struct {
	BudgetLeft      int `json:"budget_left" binding:"gte=0"`
	PlayersNeeded   int `json:"players_needed" binding:"gte=0"`
	BasePrice       int `json:"base_price" binding:"gte=0"`
	CaptainReserved int `json:"captain_reserved" binding:"gte=0"`
}

type MaxBidResponse struct {
	MaxBid int `json:"max_bid"`
}

type CloseBidRequest struct {
	TeamID string         `json:"team_id" binding:"required"`
	Amount int            `json:"amount" binding:"gte=0"`
	Player map[string]any `json:"player"`
}

type CloseBidResponse struct {
	OK bool `json:"ok"`
}

type RootResponse struct {
	Message string `json:"message"`
	Time    string `json:"time"`
}

type HealthResponse struct {
	Backend          string `json:"backend"`
	Database         string `json:"database"`
	ConnectionStatus string `json:"connection_status"`
}
