package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	Conflicts          int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	WalletStats        map[uint64]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is one kind of balance change sent to a wallet
type Scenario struct {
	Name   string
	Type   string
	Amount string
}

var scenarios = []Scenario{
	{"Deposit", "credit", "50.00"},
	{"Withdraw", "debit", "5.00"},
	{"Win Small", "win", "10.00"},
	{"Win Large", "win", "30.00"},
	{"Loss Small", "loss", "15.00"},
	{"Loss Large", "loss", "40.00"},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	walletIDsStr := flag.String("w", "1,2,3", "Comma-separated wallet IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	actorID := flag.Uint64("actor", 0, "X-Actor-ID sent with every request (0 omits it)")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	duplicates := flag.Float64("dup", 0.05, "Share of requests that replay an earlier reference id")
	flag.Parse()

	var walletIDs []uint64
	for _, idStr := range strings.Split(*walletIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			walletIDs = append(walletIDs, id)
		}
	}
	if len(walletIDs) == 0 {
		walletIDs = []uint64{1}
	}
	if *totalRequests <= 0 {
		fmt.Println("Nothing to do: -n must be positive")
		return
	}

	fmt.Printf("Load testing %s across %d wallets: %v\n", *baseURL, len(walletIDs), walletIDs)
	fmt.Printf("Concurrency: %d workers, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		WalletStats:     make(map[uint64]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	w := &worker{
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(*baseURL, "/"),
		actorID:    *actorID,
		delay:      time.Duration(*delayMs) * time.Millisecond,
		duplicates: *duplicates,
		walletIDs:  walletIDs,
		stats:      stats,
	}

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(jobs, results)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			stats.Lock.Unlock()
			fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
				completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

type worker struct {
	client     *http.Client
	baseURL    string
	actorID    uint64
	delay      time.Duration
	duplicates float64
	walletIDs  []uint64
	stats      *TestStats

	mu   sync.Mutex
	sent []sentRef
}

type sentRef struct {
	walletID uint64
	request  dto.TransactionRequest
}

func (w *worker) run(jobs <-chan int, results chan<- TestResult) {
	for range jobs {
		if w.delay > 0 {
			time.Sleep(w.delay)
		}

		walletID, req := w.next()

		w.stats.Lock.Lock()
		w.stats.WalletStats[walletID]++
		w.stats.Lock.Unlock()

		results <- w.send(walletID, req)
	}
}

// next picks a fresh request or, with the configured probability, replays
// an earlier one so the duplicate path is exercised too
func (w *worker) next() (uint64, dto.TransactionRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.sent) > 0 && rand.Float64() < w.duplicates {
		ref := w.sent[rand.Intn(len(w.sent))]
		w.countScenario("Replay")
		return ref.walletID, ref.request
	}

	walletID := w.walletIDs[rand.Intn(len(w.walletIDs))]
	scenario := scenarios[rand.Intn(len(scenarios))]
	w.countScenario(scenario.Name)

	req := dto.TransactionRequest{
		Type:        scenario.Type,
		Amount:      scenario.Amount,
		Description: "load test " + scenario.Name,
		ReferenceID: "load-" + uuid.NewString(),
	}
	w.sent = append(w.sent, sentRef{walletID: walletID, request: req})
	return walletID, req
}

func (w *worker) countScenario(name string) {
	w.stats.Lock.Lock()
	w.stats.ScenarioStats[name]++
	w.stats.Lock.Unlock()
}

func (w *worker) send(walletID uint64, body dto.TransactionRequest) TestResult {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return TestResult{Error: err}
	}

	url := fmt.Sprintf("%s/wallets/%d/transactions", w.baseURL, walletID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return TestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderRequestID, uuid.NewString())
	if w.actorID > 0 {
		req.Header.Set(middleware.HeaderActorID, fmt.Sprintf("%d", w.actorID))
	}

	startTime := time.Now()
	resp, err := w.client.Do(req)
	result := TestResult{ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		var errBody dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil && errBody.Message != "" {
			result.Error = fmt.Errorf("HTTP %d: %s", resp.StatusCode, errBody.Message)
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
	}
	return result
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		if result.StatusCode == http.StatusConflict {
			s.Conflicts++
		}
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	s.MinResponseTime = min(s.MinResponseTime, result.ResponseTime)
	s.MaxResponseTime = max(s.MaxResponseTime, result.ResponseTime)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sortedTimes := slices.Clone(stats.ResponseTimes)
	slices.Sort(sortedTimes)

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Conflicts (409):     %d\n", stats.Conflicts)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sortedTimes, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sortedTimes, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sortedTimes, 99))

	fmt.Println("\n----------------- WALLET DISTRIBUTION -----------------")
	for walletID, count := range stats.WalletStats {
		fmt.Printf("Wallet %d: %d requests\n", walletID, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-12s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
