package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	auction "auction-backend/internal/auctionService"
	"auction-backend/internal/store"
)

func seedAuction(b *testing.B, svc *auction.AuctionService, teamsCount int) string {
	b.Helper()
	auctionID, err := svc.CreateAuction(context.Background(), "bench", "cricket", map[string]any{
		"teams_count":      teamsCount,
		"budget_per_team":  10000,
		"base_price":       100,
		"captain_reserved": 500,
		"players_per_team": 11,
	})
	if err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}
	return auctionID
}

// Benchmark 1: MaxBid - pure formula (Micro Benchmark)
func Benchmark_MaxBid(b *testing.B) {
	svc := auction.NewAuctionService(store.NewMemoryStore())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = svc.MaxBid(1000+i%500, i%11, 100, 200)
	}
}

// Benchmark 2: DrawPlayer - Single-Threaded
func Benchmark_DrawPlayer(b *testing.B) {
	svc := auction.NewAuctionService(store.NewMemoryStore())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = svc.DrawPlayer(1, 99999)
	}
}

// Benchmark 3: Overview - Single-Threaded (Low Contention)
func Benchmark_Overview_SingleThreaded(b *testing.B) {
	svc := auction.NewAuctionService(store.NewMemoryStore())
	auctionID := seedAuction(b, svc, 10)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.Overview(context.Background(), auctionID); err != nil {
			b.Fatalf("failed to compute overview: %v", err)
		}
	}
}

// Benchmark 4: Overview - Concurrent readers (High Contention)
func Benchmark_Overview_Concurrent(b *testing.B) {
	svc := auction.NewAuctionService(store.NewMemoryStore())
	auctionID := seedAuction(b, svc, 10)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Overview(context.Background(), auctionID); err != nil {
				b.Fatalf("failed to compute overview: %v", err)
			}
		}
	})
}

// Benchmark 5: ClosePurchase - Shared Team (High Contention writers)
func Benchmark_ClosePurchase_ConcurrentSharedTeam(b *testing.B) {
	svc := auction.NewAuctionService(store.NewMemoryStore())
	auctionID := seedAuction(b, svc, 1)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(rand.Int63()))
		for pb.Next() {
			player := map[string]any{"name": fmt.Sprintf("Player %d", rnd.Int())}
			if _, err := svc.ClosePurchase(context.Background(), auctionID, "Team 1", rnd.Intn(5), player); err != nil {
				b.Fatalf("failed to close purchase: %v", err)
			}
		}
	})
}

// Benchmark 6: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload(b *testing.B) {
	svc := auction.NewAuctionService(store.NewMemoryStore())
	auctionID := seedAuction(b, svc, 5)

	b.ReportAllocs()
	b.ResetTimer()

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(rand.Int63()))
		for pb.Next() {
			switch {
			case rnd.Intn(10) < 3:
				teamName := fmt.Sprintf("Team %d", rnd.Intn(5)+1)
				player := map[string]any{"name": fmt.Sprintf("Player %d", rnd.Int())}
				_, _ = svc.ClosePurchase(context.Background(), auctionID, teamName, rnd.Intn(5), player)
			default:
				_, _ = svc.Overview(context.Background(), auctionID)
			}
		}
	})
}
