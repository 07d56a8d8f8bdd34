package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type target struct {
	Method   string
	Path     string
	Critical bool
}

type result struct {
	Target   target
	Status   int
	Duration time.Duration
	Err      error
}

// defaultTargets exercises every public endpoint with representative queries.
var defaultTargets = []target{
	{Method: http.MethodGet, Path: "/healthz", Critical: true},
	{Method: http.MethodGet, Path: "/readyz", Critical: true},
	{Method: http.MethodGet, Path: "/metrics"},
	{Method: http.MethodGet, Path: "/api/v1/search", Critical: true},
	{Method: http.MethodGet, Path: "/api/v1/search?level=Beginner&budget=100&sort=price", Critical: true},
	{Method: http.MethodGet, Path: "/api/v1/search?location=Kallang&location=Bishan&date=2026-09-01"},
	{Method: http.MethodGet, Path: "/api/v1/search/filters", Critical: true},
	{Method: http.MethodGet, Path: "/api/v1/search/dates"},
	{Method: http.MethodGet, Path: "/api/v1/search/export?format=csv"},
	{Method: http.MethodGet, Path: "/api/v1/instructors", Critical: true},
}

func main() {
	var (
		base    string
		timeout time.Duration
	)
	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}
	failures := 0

	for _, t := range defaultTargets {
		p := run(client, base, t)
		status := "ok"
		if p.Err != nil || p.Status >= http.StatusBadRequest {
			status = "FAIL"
			if t.Critical {
				failures++
			}
		}
		if p.Err != nil {
			fmt.Printf("%-4s %-70s %s (%v)\n", t.Method, t.Path, status, p.Err)
			continue
		}
		fmt.Printf("%-4s %-70s %s %d in %s\n", t.Method, t.Path, status, p.Status, p.Duration.Round(time.Millisecond))
	}

	if failures > 0 {
		log.Printf("%d critical check(s) failed", failures)
		os.Exit(1)
	}
}

func run(client *http.Client, base string, t target) result {
	url := strings.TrimRight(base, "/") + t.Path
	req, err := http.NewRequest(t.Method, url, nil)
	if err != nil {
		return result{Target: t, Err: err}
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return result{Target: t, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	// Envelope responses must at least parse; file downloads are skipped.
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var payload map[string]interface{}
		body, readErr := io.ReadAll(resp.Body)
		if readErr == nil && len(body) > 0 {
			if jsonErr := json.Unmarshal(body, &payload); jsonErr != nil {
				return result{Target: t, Status: resp.StatusCode, Err: jsonErr}
			}
		}
	}
	return result{Target: t, Status: resp.StatusCode, Duration: time.Since(start)}
}
