package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-backend/internal/auctionService"
	"auction-backend/internal/server"
	"auction-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory document store
// for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := auction.NewAuctionService(store.NewMemoryStore())
	router := server.SetupRouter(service)
	return router
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the JSON object
// response.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// ExecuteRequestAndParseList executes an HTTP request and parses the JSON
// array response.
func ExecuteRequestAndParseList(t *testing.T, router *gin.Engine, method, url string) ([]map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, nil)

	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response list: %v", err)
	}
	return resp, w
}

// CreateTestAuction creates an auction through the API and returns its id.
func CreateTestAuction(t *testing.T, router *gin.Engine, settings map[string]any) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, "POST", "/auctions", map[string]any{
		"name":     "Test Auction",
		"category": "cricket",
		"settings": settings,
	})
	if w.Code != 200 {
		t.Fatalf("failed to create auction: status %d body %s", w.Code, w.Body.String())
	}

	auctionID, ok := resp["auction_id"].(string)
	if !ok || auctionID == "" {
		t.Fatalf("create auction response missing auction_id: %v", resp)
	}
	return auctionID
}
