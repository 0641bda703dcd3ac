// Command send-test-event posts a sample Digistore24 payment event to a
// running receiver, for local smoke testing.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

func main() {
	target := flag.String("target", "http://localhost:5000/webhook", "receiver URL")
	flag.Parse()

	event := map[string]any{
		"event":        "on_payment",
		"order_id":     "TEST-0000001",
		"product_id":   "424242",
		"product_name": "Example Product",
		"email":        "buyer@example.com",
		"amount":       "49.00",
		"currency":     "EUR",
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("failed to marshal event: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *target, bytes.NewReader(body))
	if err != nil {
		log.Fatalf("failed to create request: %s", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("failed to POST event: %s", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	log.Printf("%s: %s", resp.Status, respBody)
}
