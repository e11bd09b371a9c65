package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numMeetings  = 20
	numUsers     = 6
)

var assignmentTypes = []string{"essay", "research", "dissertation", "presentation", "homework"}
var academicLevels = []string{"highschool", "undergraduate", "masters", "phd"}
var urgencies = []string{"7", "3", "1", "0.5"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== MSD Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Meetings: %d | Users: %d\n\n", numMeetings, numUsers)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Seed chat traffic across meetings
	fmt.Println("\n--- Phase 1: Seeding chat (POST /chat) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doPostChat(rng)
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (60% POST, 40% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.50:
			return doPostChat(rng)
		case r < 0.60:
			return doPostNote(rng)
		case r < 0.75:
			return doGetChat(rng)
		case r < 0.85:
			return doGetParticipants(rng)
		default:
			return doGetAnalytics(rng)
		}
	})

	// Phase 3: Read-heavy load over cached derived endpoints
	fmt.Println("\n--- Phase 3: Read-heavy load (10% POST, 90% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doPostChat(rng)
		case r < 0.40:
			return doGetChat(rng)
		case r < 0.65:
			return doGetAnalytics(rng)
		case r < 0.85:
			return doGetQuote(rng)
		default:
			return doGetParticipants(rng)
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func meetingID(rng *rand.Rand) string {
	return fmt.Sprintf("load-%d", rng.Intn(numMeetings))
}

func userID(rng *rand.Rand) string {
	return fmt.Sprintf("user%d", rng.Intn(numUsers)+1)
}

func doPostChat(rng *rand.Rand) result {
	uid := userID(rng)
	body := map[string]interface{}{
		"userId":   uid,
		"username": "Load " + uid,
		"message":  fmt.Sprintf("message %d from %s", rng.Intn(100000), uid),
	}
	if rng.Float64() < 0.2 {
		body["recipientId"] = userID(rng)
	}

	data, _ := json.Marshal(body)
	url := fmt.Sprintf("%s/chat?m=%s", baseURL, meetingID(rng))
	start := time.Now()
	resp, err := httpClient.Post(url, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /chat", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /chat", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doPostNote(rng *rand.Rand) result {
	body := map[string]interface{}{
		"userId":  userID(rng),
		"content": fmt.Sprintf("note body %d", rng.Intn(100000)),
	}

	data, _ := json.Marshal(body)
	url := fmt.Sprintf("%s/notes?m=%s", baseURL, meetingID(rng))
	start := time.Now()
	resp, err := httpClient.Post(url, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /notes", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /notes", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetChat(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/chat?m=%s", baseURL, meetingID(rng))
	if rng.Float64() < 0.3 {
		url += "&user=" + userID(rng)
	}
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /chat", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /chat", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetParticipants(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/participants?m=%s", baseURL, meetingID(rng))
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /participants", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /participants", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetAnalytics(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/analytics?m=%s", baseURL, meetingID(rng))
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /analytics", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /analytics", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetQuote(rng *rand.Rand) result {
	url := fmt.Sprintf("%s/quote?assignmentType=%s&pages=%d&urgency=%s&academicLevel=%s",
		baseURL,
		assignmentTypes[rng.Intn(len(assignmentTypes))],
		rng.Intn(30)+1,
		urgencies[rng.Intn(len(urgencies))],
		academicLevels[rng.Intn(len(academicLevels))])
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /quote", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /quote", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
