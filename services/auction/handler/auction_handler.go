package handler

import (
	"context"
	"net/http"
	"time"

	auction "auction-backend/internal/auctionService"
	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

// Draw bounds applied when the request omits them
const (
	defaultMinNumber = 1
	defaultMaxNumber = 99999
)

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, name, category string, settings map[string]any) (string, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	GetTeams(ctx context.Context, auctionID string) ([]model.Team, error)
	Overview(ctx context.Context, auctionID string) (auction.AuctionOverview, error)
	DrawPlayer(minNumber, maxNumber int) auction.DrawResult
	MaxBid(budgetLeft, playersNeeded, basePrice, captainReserved int) int
	ClosePurchase(ctx context.Context, auctionID, teamName string, amount int, player map[string]any) (bool, error)
	HealthCheck(ctx context.Context) bool
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// RootHandler handles GET /
func (h *AuctionHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, helpers.RootResponse{
		Message: "Auction API running",
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthHandler handles GET /test
func (h *AuctionHandler) HealthHandler(c *gin.Context) {
	status := "ok"
	if !h.service.HealthCheck(c.Request.Context()) {
		status = "error"
	}

	c.JSON(http.StatusOK, helpers.HealthResponse{
		Backend:          "ok",
		Database:         "mongo",
		ConnectionStatus: status,
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auctionID, err := h.service.CreateAuction(c.Request.Context(), req.Name, req.Category, req.Settings)
	if err != nil {
		status, detail := helpers.MapErrorToHTTP(err)
		utils.JSONDetail(c, status, detail)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"name":  req.Name,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.CreateAuctionResponse{AuctionID: auctionID})
	helpers.LogSuccess("CreateAuctionHandler", "auction created", map[string]any{
		"auction_id": auctionID,
		"name":       req.Name,
		"category":   req.Category,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		status, detail := helpers.MapErrorToHTTP(err)
		utils.JSONDetail(c, status, detail)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}
	c.JSON(http.StatusOK, auctions)
}

// GetTeamsHandler handles GET /auctions/:auction_id/teams
func (h *AuctionHandler) GetTeamsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	teams, err := h.service.GetTeams(c.Request.Context(), auctionID)
	if err != nil {
		status, detail := helpers.MapErrorToHTTP(err)
		utils.JSONDetail(c, status, detail)
		utils.Error("GetTeamsHandler: failed to get teams", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	if teams == nil {
		teams = []model.Team{}
	}
	c.JSON(http.StatusOK, teams)
}

// OverviewHandler handles GET /auctions/:auction_id/overview
func (h *AuctionHandler) OverviewHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	overview, err := h.service.Overview(c.Request.Context(), auctionID)
	if err != nil {
		status, detail := helpers.MapErrorToHTTP(err)
		utils.JSONDetail(c, status, detail)
		utils.Warn("OverviewHandler: overview unavailable", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, overview)
	helpers.LogSuccess("OverviewHandler", "overview computed", map[string]any{
		"auction_id":  auctionID,
		"teams_count": len(overview.Teams),
	})
}

// DrawPlayerHandler handles POST /auctions/:auction_id/pick
func (h *AuctionHandler) DrawPlayerHandler(c *gin.Context) {
	var req helpers.DrawPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DrawPlayerHandler", err)
		return
	}

	minNumber := defaultMinNumber
	if req.MinNumber != nil {
		minNumber = *req.MinNumber
	}
	maxNumber := defaultMaxNumber
	if req.MaxNumber != nil {
		maxNumber = *req.MaxNumber
	}
	if minNumber > maxNumber {
		utils.JSONDetail(c, http.StatusBadRequest, "min_number must not exceed max_number")
		utils.Warn("DrawPlayerHandler: invalid draw bounds", map[string]any{
			"min_number": minNumber,
			"max_number": maxNumber,
		})
		return
	}

	result := h.service.DrawPlayer(minNumber, maxNumber)

	c.JSON(http.StatusOK, result)
	helpers.LogSuccess("DrawPlayerHandler", "player drawn", map[string]any{
		"auction_id": c.Param("auction_id"),
		"number":     result.Number,
		"role":       result.Player.Role,
	})
}

// MaxBidHandler handles POST /max-bid
func (h *AuctionHandler) MaxBidHandler(c *gin.Context) {
	var req helpers.MaxBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MaxBidHandler", err)
		return
	}

	maxBid := h.service.MaxBid(req.BudgetLeft, req.PlayersNeeded, req.BasePrice, req.CaptainReserved)

	c.JSON(http.StatusOK, helpers.MaxBidResponse{MaxBid: maxBid})
}

// CloseBidHandler handles POST /auctions/:auction_id/close-bid
func (h *AuctionHandler) CloseBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.CloseBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CloseBidHandler", err)
		return
	}

	ok, err := h.service.ClosePurchase(c.Request.Context(), auctionID, req.TeamID, req.Amount, req.Player)
	if err != nil {
		status, detail := helpers.MapErrorToHTTP(err)
		utils.JSONDetail(c, status, detail)
		utils.Warn("CloseBidHandler: failed to close bid", map[string]any{
			"auction_id": auctionID,
			"team_id":    req.TeamID,
			"error":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.CloseBidResponse{OK: ok})
	helpers.LogSuccess("CloseBidHandler", "bid closed", map[string]any{
		"auction_id": auctionID,
		"team_id":    req.TeamID,
		"amount":     req.Amount,
	})
}
