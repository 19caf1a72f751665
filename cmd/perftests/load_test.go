package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-backend/internal/auctionService"
	"auction-backend/internal/store"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name         string
	NumAuctions  int
	TeamsPerAuct int
	ReadRatio    int
	MaxAmount    int
	Burst        bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupAuctions creates the service with pre-created auctions and teams
func setupAuctions(b *testing.B, numAuctions, teamsPer int) (*auction.AuctionService, []string) {
	svc := auction.NewAuctionService(store.NewMemoryStore())

	auctionIDs := make([]string, 0, numAuctions)
	for i := 0; i < numAuctions; i++ {
		id, err := svc.CreateAuction(context.Background(), fmt.Sprintf("auction_%d", i), "cricket", map[string]any{
			"teams_count":      teamsPer,
			"budget_per_team":  100000,
			"base_price":       100,
			"players_per_team": 11,
		})
		if err != nil {
			b.Fatalf("failed to seed auction %d: %v", i, err)
		}
		auctionIDs = append(auctionIDs, id)
	}
	return svc, auctionIDs
}

// Benchmark_Load_AuctionSystem runs multiple scenarios
func Benchmark_Load_AuctionSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 50, 8, 0, 500, false},
		{"High-Contention-WriteHeavy", 2, 4, 0, 200, false},
		{"Mixed-Workload", 10, 8, 7, 300, false},
		{"ReadHeavy", 10, 8, 9, 200, false},
		{"Edge-Case-SingleAuction", 1, 2, 5, 100, false},
		{"Peak-Burst", 10, 8, 3, 200, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc, auctionIDs := setupAuctions(b, s.NumAuctions, s.TeamsPerAuct)

	var totalOps, successfulPurchases, failedPurchases, totalReads int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			auctionID := auctionIDs[rnd.Intn(len(auctionIDs))]
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.Overview(context.Background(), auctionID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				teamName := fmt.Sprintf("Team %d", rnd.Intn(s.TeamsPerAuct)+1)
				player := map[string]any{"name": fmt.Sprintf("Player %d", rnd.Int()), "role": "Batter"}
				if _, err := svc.ClosePurchase(context.Background(), auctionID, teamName, rnd.Intn(s.MaxAmount), player); err != nil {
					b.Logf("ignored purchase error: %v", err)
					atomic.AddInt64(&failedPurchases, 1)
				} else {
					atomic.AddInt64(&successfulPurchases, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Purchases: %d | Failed: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulPurchases, failedPurchases, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
