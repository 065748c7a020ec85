// Package twinsync provides an HTTP client for the TwinSync Spot backend API.
//
// # Overview
//
// This package defines the API client for communicating with the spot
// monitoring backend. It handles HTTP communication, ingress path prefixing,
// JSON serialization, and type-safe representation of spots, check results,
// and camera entities.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the backend API schema
//
// # Client Usage
//
// Create a client from the server URL, the resolved ingress base path, and
// an optional bearer token:
//
//	client, err := twinsync.NewClient("http://homeassistant.local:8099", basePath, token)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	spots, err := client.ListSpots(ctx)
//	if err != nil {
//		log.Printf("spot fetch failed: %v", err)
//	}
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation; no client-level timeout or retry
//   - Prefix the endpoint with the resolved base path exactly once
//   - Send Content-Type and Accept: application/json (caller headers may
//     override)
//   - Surface any non-2xx status as *APIError carrying the response body
//     text, or "HTTP <status>" when the body is empty
//
// A malformed JSON body on a success status propagates as a decode error;
// callers are never handed a partially decoded payload as success.
package twinsync
