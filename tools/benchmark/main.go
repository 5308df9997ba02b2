// Package main provides a load generator CLI for the order risk API.
// It submits synthetic orders concurrently and reports latency and
// decision statistics, optionally as a markdown file.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/orderguard/risk-api/internal/api/shared/dto"
	"github.com/orderguard/risk-api/internal/domain"
)

const (
	defaultBaseURL = "http://localhost:8080"
	submitPath     = "/api/v1/orders"
)

type Config struct {
	BaseURL      string
	Requests     int           // Total number of submissions to send
	Concurrency  int           // Number of concurrent workers
	Timeout      time.Duration // Per-request timeout
	OutputFile   string        // Output markdown file path (optional)
	ReuseUsers   int           // Pool of synthetic users to draw from (small pool = more history hits)
	Debug        bool
}

// RequestResult captures the outcome of one submission
type RequestResult struct {
	Duration  time.Duration
	Status    int
	RiskScore int
	Action    string
	Err       error
}

// Summary aggregates all request results
type Summary struct {
	Total       int
	Succeeded   int
	Failed      int
	Elapsed     time.Duration
	Latencies   []time.Duration // successful requests only, sorted
	ByAction    map[string]int
	ByStatus    map[int]int
	ScoreSum    int
}

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Submitting %d orders to %s with %d workers\n", cfg.Requests, cfg.BaseURL, cfg.Concurrency)

	summary := run(ctx, cfg)

	report := buildReport(cfg, summary)
	fmt.Print(report)

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(report), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", cfg.OutputFile)
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() Config {
	var cfg Config
	var timeout string

	flag.StringVar(&cfg.BaseURL, "url", defaultBaseURL, "Base URL of the API")
	flag.IntVar(&cfg.Requests, "n", 100, "Total number of submissions")
	flag.IntVar(&cfg.Concurrency, "c", 4, "Number of concurrent workers")
	flag.StringVar(&timeout, "timeout", "60s", "Per-request timeout")
	flag.StringVar(&cfg.OutputFile, "output", "", "Write the report to a markdown file")
	flag.IntVar(&cfg.ReuseUsers, "users", 10, "Size of the synthetic user pool")
	flag.BoolVar(&cfg.Debug, "debug", false, "Log each request")
	flag.Parse()

	d, err := time.ParseDuration(timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid timeout: %v\n", err)
		os.Exit(2)
	}
	cfg.Timeout = d

	if cfg.Requests < 1 || cfg.Concurrency < 1 || cfg.ReuseUsers < 1 {
		fmt.Fprintln(os.Stderr, "-n, -c and -users must be positive")
		os.Exit(2)
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func run(ctx context.Context, cfg Config) *Summary {
	client := &http.Client{Timeout: cfg.Timeout}
	users := newUserPool(cfg.ReuseUsers)

	jobs := make(chan int)
	results := make(chan RequestResult, cfg.Requests)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seq := range jobs {
				res := submitOrder(ctx, client, cfg, users.pick(seq))
				if cfg.Debug {
					if res.Err != nil {
						fmt.Printf("  [%d] error: %v\n", seq, res.Err)
					} else {
						fmt.Printf("  [%d] %d score=%d action=%s in %s\n",
							seq, res.Status, res.RiskScore, res.Action, formatDuration(res.Duration))
					}
				}
				results <- res
			}
		}()
	}

	start := time.Now()
dispatch:
	for i := 0; i < cfg.Requests; i++ {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	summary := &Summary{
		Elapsed:  time.Since(start),
		ByAction: make(map[string]int),
		ByStatus: make(map[int]int),
	}
	for res := range results {
		summary.Total++
		if res.Err != nil || res.Status != http.StatusAccepted {
			summary.Failed++
			if res.Status != 0 {
				summary.ByStatus[res.Status]++
			}
			continue
		}
		summary.Succeeded++
		summary.ByStatus[res.Status]++
		summary.ByAction[res.Action]++
		summary.ScoreSum += res.RiskScore
		summary.Latencies = append(summary.Latencies, res.Duration)
	}
	sort.Slice(summary.Latencies, func(i, j int) bool { return summary.Latencies[i] < summary.Latencies[j] })

	return summary
}

func submitOrder(ctx context.Context, client *http.Client, cfg Config, user domain.UserProfilePayload) RequestResult {
	submission := domain.OrderSubmission{
		UserProfile: user,
		OrderDetails: domain.OrderDetailsPayload{
			OrderID:     uuid.NewString(),
			TotalAmount: float64(10+rand.Intn(490)) + 0.99,
			ItemCount:   1 + rand.Intn(5),
			Method:      "card",
		},
		Address: domain.AddressPayload{
			Street:     fmt.Sprintf("%d Market St", 1+rand.Intn(200)),
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    user.Country,
		},
		IPInfo: domain.IPInfoPayload{
			IPAddress: fmt.Sprintf("203.0.113.%d", 1+rand.Intn(250)),
			IPCountry: user.Country,
			Latitude:  39.78,
			Longitude: -89.65,
		},
	}

	body, err := json.Marshal(submission)
	if err != nil {
		return RequestResult{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		return RequestResult{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return RequestResult{Duration: elapsed, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return RequestResult{Duration: elapsed, Status: resp.StatusCode, Err: err}
	}

	result := RequestResult{Duration: elapsed, Status: resp.StatusCode}
	if resp.StatusCode == http.StatusAccepted {
		var decision dto.OrderDecisionResponse
		if err := json.Unmarshal(raw, &decision); err != nil {
			result.Err = fmt.Errorf("failed to decode decision: %w", err)
			return result
		}
		result.RiskScore = decision.RiskScore
		result.Action = decision.Action
	}
	return result
}

// userPool hands out a fixed set of synthetic identities so repeated
// submissions build up real history on the server side
type userPool struct {
	users []domain.UserProfilePayload
}

func newUserPool(size int) *userPool {
	created := time.Now().AddDate(0, -6, 0).UTC().Format(time.RFC3339)
	users := make([]domain.UserProfilePayload, size)
	for i := range users {
		users[i] = domain.UserProfilePayload{
			UserID:    fmt.Sprintf("bench-user-%03d", i),
			FullName:  fmt.Sprintf("Bench User %03d", i),
			Email:     fmt.Sprintf("bench-%03d@example.com", i),
			Phone:     fmt.Sprintf("+1555%07d", i),
			Country:   "US",
			CreatedAt: created,
		}
	}
	return &userPool{users: users}
}

func (p *userPool) pick(seq int) domain.UserProfilePayload {
	return p.users[seq%len(p.users)]
}

func buildReport(cfg Config, s *Summary) string {
	var b strings.Builder

	b.WriteString("\n# Order API Benchmark\n\n")
	fmt.Fprintf(&b, "- Target: %s%s\n", cfg.BaseURL, submitPath)
	fmt.Fprintf(&b, "- Requests: %d (concurrency %d, user pool %d)\n", s.Total, cfg.Concurrency, cfg.ReuseUsers)
	fmt.Fprintf(&b, "- Elapsed: %s (%s)\n", formatDuration(s.Elapsed), formatRate(s.Total, s.Elapsed))
	fmt.Fprintf(&b, "- Succeeded: %d (%s), failed: %d\n\n", s.Succeeded, percentageString(s.Succeeded, s.Total), s.Failed)

	if len(s.Latencies) > 0 {
		b.WriteString("## Latency\n\n")
		fmt.Fprintf(&b, "- min: %s\n", formatDuration(s.Latencies[0]))
		fmt.Fprintf(&b, "- p50: %s\n", formatDuration(percentile(s.Latencies, 50)))
		fmt.Fprintf(&b, "- p95: %s\n", formatDuration(percentile(s.Latencies, 95)))
		fmt.Fprintf(&b, "- p99: %s\n", formatDuration(percentile(s.Latencies, 99)))
		fmt.Fprintf(&b, "- max: %s\n\n", formatDuration(s.Latencies[len(s.Latencies)-1]))
	}

	if s.Succeeded > 0 {
		b.WriteString("## Decisions\n\n")
		fmt.Fprintf(&b, "- mean risk score: %.1f\n", float64(s.ScoreSum)/float64(s.Succeeded))
		actions := make([]string, 0, len(s.ByAction))
		for action := range s.ByAction {
			actions = append(actions, action)
		}
		sort.Strings(actions)
		for _, action := range actions {
			fmt.Fprintf(&b, "- %s: %d (%s)\n", action, s.ByAction[action], percentageString(s.ByAction[action], s.Succeeded))
		}
		b.WriteString("\n")
	}

	if len(s.ByStatus) > 0 {
		b.WriteString("## Status codes\n\n")
		codes := make([]int, 0, len(s.ByStatus))
		for code := range s.ByStatus {
			codes = append(codes, code)
		}
		sort.Ints(codes)
		for _, code := range codes {
			fmt.Fprintf(&b, "- %d: %d\n", code, s.ByStatus[code])
		}
		b.WriteString("\n")
	}

	return b.String()
}
