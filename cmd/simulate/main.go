package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// simulate drives booking drafts through the API: fill, submit, wait for
// confirmation, dismiss. A slice of the drafts is deliberately invalid to
// exercise the validation path.
type simConfig struct {
	APIBaseURL   string
	Duration     time.Duration
	Workers      int
	InvalidRatio float64
	PollInterval time.Duration
}

type metrics struct {
	Confirmed int64
	Rejected  int64
	Errors    int64

	mu        sync.Mutex
	latencies []time.Duration
}

func (m *metrics) recordLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latencies = append(m.latencies, d)
}

type draftSnapshot struct {
	ID              string            `json:"id"`
	State           string            `json:"state"`
	FieldErrors     map[string]string `json:"field_errors"`
	SubmissionError string            `json:"submission_error"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

var serviceIDs = []string{"consultation", "checkup", "specialist", "followup"}

func main() {
	cfg := simConfig{}
	flag.StringVar(&cfg.APIBaseURL, "api", "http://localhost:8080", "API base URL")
	flag.DurationVar(&cfg.Duration, "duration", 30*time.Second, "how long to run")
	flag.IntVar(&cfg.Workers, "workers", 4, "concurrent workers")
	flag.Float64Var(&cfg.InvalidRatio, "invalid", 0.2, "share of deliberately invalid submissions")
	flag.DurationVar(&cfg.PollInterval, "poll", 200*time.Millisecond, "submission poll interval")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}
	m := &metrics{}
	deadline := time.Now().Add(cfg.Duration)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for time.Now().Before(deadline) {
				if err := runScenario(client, cfg, m); err != nil {
					atomic.AddInt64(&m.Errors, 1)
					log.Printf("worker=%d scenario error: %v", worker, err)
				}
			}
		}(i)
	}
	wg.Wait()

	report(m)
}

func runScenario(client *http.Client, cfg simConfig, m *metrics) error {
	snap, err := request(client, http.MethodPost, cfg.APIBaseURL+"/api/v1/drafts", nil)
	if err != nil {
		return fmt.Errorf("create draft: %w", err)
	}
	draftURL := cfg.APIBaseURL + "/api/v1/drafts/" + snap.ID
	defer func() {
		req, _ := http.NewRequest(http.MethodDelete, draftURL, nil)
		if resp, err := client.Do(req); err == nil {
			resp.Body.Close()
		}
	}()

	invalid := rand.Float64() < cfg.InvalidRatio

	email := gofakeit.Email()
	if invalid {
		email = gofakeit.Word() // no @, no dot
	}
	fields := map[string]string{
		"name":       gofakeit.Name(),
		"email":      email,
		"service_id": serviceIDs[rand.Intn(len(serviceIDs))],
		"date":       time.Now().AddDate(0, 0, 1+rand.Intn(30)).Format("2006-01-02"),
		"time":       fmt.Sprintf("%02d:%02d", 8+rand.Intn(10), rand.Intn(60)),
	}
	for field, value := range fields {
		body, _ := json.Marshal(map[string]string{"field": field, "value": value})
		if _, err := request(client, http.MethodPatch, draftURL, body); err != nil {
			return fmt.Errorf("set %s: %w", field, err)
		}
	}

	start := time.Now()
	resp, err := client.Post(draftURL+"/submit", "application/json", nil)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		atomic.AddInt64(&m.Rejected, 1)
		if !invalid {
			return fmt.Errorf("valid draft rejected")
		}
		return nil
	}
	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("submit: unexpected status %d", resp.StatusCode)
	}
	if invalid {
		return fmt.Errorf("invalid draft accepted")
	}

	// Poll until the collaborator settles the submission.
	for {
		snap, err := request(client, http.MethodGet, draftURL, nil)
		if err != nil {
			return fmt.Errorf("poll: %w", err)
		}
		switch snap.State {
		case "confirmed":
			atomic.AddInt64(&m.Confirmed, 1)
			m.recordLatency(time.Since(start))
			_, err := request(client, http.MethodPost, draftURL+"/dismiss", nil)
			return err
		case "editing":
			return fmt.Errorf("submission failed: %s", snap.SubmissionError)
		}
		time.Sleep(cfg.PollInterval)
	}
}

func request(client *http.Client, method, url string, body []byte) (draftSnapshot, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return draftSnapshot{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return draftSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return draftSnapshot{}, fmt.Errorf("%s %s: status %d", method, url, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return draftSnapshot{}, err
	}
	var snap draftSnapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		return draftSnapshot{}, err
	}
	return snap, nil
}

func report(m *metrics) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total time.Duration
	for _, l := range m.latencies {
		total += l
	}
	avg := time.Duration(0)
	if len(m.latencies) > 0 {
		avg = total / time.Duration(len(m.latencies))
	}

	fmt.Printf("confirmed=%d rejected=%d errors=%d avg_confirm_latency=%s\n",
		atomic.LoadInt64(&m.Confirmed),
		atomic.LoadInt64(&m.Rejected),
		atomic.LoadInt64(&m.Errors),
		avg)
}
