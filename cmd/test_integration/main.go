// Smoke test client for a running server. Hits the main API surface in
// order and prints PASS/FAIL per step.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var baseURL = "http://localhost:8080"

func main() {
	if v := os.Getenv("BASE_URL"); v != "" {
		baseURL = v
	}

	// Give a freshly started server a moment.
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test against", baseURL)

	scope := map[string]interface{}{
		"users": 5000, "trafficLevel": 3, "dataVolumeGB": 50,
		"regions": 1, "availability": 99.9,
	}

	ok := true
	ok = step("health", "GET", "/health", nil, nil) && ok

	var arch map[string]interface{}
	ok = step("generate architecture", "POST", "/api/architecture/generate", map[string]interface{}{
		"components": []string{"nextjs", "nodejs", "postgresql", "redis"},
		"scope":      scope,
	}, &arch) && ok

	ok = step("estimate cost", "POST", "/api/architecture/cost", map[string]interface{}{
		"components": []string{"postgresql"},
		"scope":      scope,
	}, nil) && ok

	var report map[string]interface{}
	if arch != nil {
		ok = step("carbon report", "POST", "/api/carbon/report", map[string]interface{}{
			"architecture_json": arch,
			"region":            "eu-north-1",
			"user_id":           "smoke-user",
		}, &report) && ok
	}

	ok = step("carbon regions", "GET", "/api/carbon/regions", nil, nil) && ok

	ok = step("sustainability score", "POST", "/api/carbon/score", map[string]interface{}{
		"current_carbon_kg":  50.0,
		"previous_carbon_kg": 100.0,
		"region":             "eu-north-1",
		"user_id":            "smoke-user",
	}, nil) && ok

	var sandbox map[string]interface{}
	if arch != nil {
		ok = step("publish sandbox", "POST", "/api/sandboxes", map[string]interface{}{
			"projectName":      "Smoke Test",
			"description":      "smoke test publication",
			"architectureJson": arch,
		}, &sandbox) && ok
	}
	if sandbox != nil {
		if id, _ := sandbox["sandboxId"].(string); id != "" {
			ok = step("get sandbox", "GET", "/api/sandboxes/"+id, nil, nil) && ok
		}
	}

	ok = step("leaderboard", "GET", "/api/incentives/leaderboard", nil, nil) && ok
	ok = step("user points", "GET", "/api/incentives/users/smoke-user", nil, nil) && ok
	ok = step("chat", "POST", "/api/chat", map[string]interface{}{
		"message": "design a system with next.js and postgresql",
		"scope":   scope,
	}, nil) && ok

	if !ok {
		fmt.Println("Smoke test FAILED")
		os.Exit(1)
	}
	fmt.Println("Smoke test PASSED")
}

func step(name, method, path string, payload interface{}, out *map[string]interface{}) bool {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", name, err)
			return false
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", name, err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", name, err)
		return false
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		fmt.Printf("FAIL %s: status %d: %s\n", name, resp.StatusCode, string(data))
		return false
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			fmt.Printf("FAIL %s: bad response body: %v\n", name, err)
			return false
		}
	}

	fmt.Printf("PASS %s\n", name)
	return true
}
