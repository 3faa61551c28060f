// Package nasa provides an HTTP client for the roverwatch proxy API.
//
// # Overview
//
// This package defines the API client for communicating with the roverwatch
// proxy daemon, which in turn forwards requests to the upstream Mars rover
// photo API with the secret api_key attached. It handles HTTP communication,
// JSON deserialization, and type-safe representation of rovers and photos.
//
// # Client Usage
//
// Create a client using the api_server address from configuration:
//
//	client, err := nasa.NewClient("127.0.0.1:3000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	rovers, err := client.FetchRovers(ctx)
//	gallery, err := client.FetchPhotos(ctx, "Curiosity", "2024-02-19")
//
// # API Endpoints
//
// The client supports two read-only endpoints:
//
//   - GET /rovers: List of rover missions with launch/landing dates and status
//   - GET /rovers/{name}?max_date=YYYY-MM-DD: Photos taken by one rover on the
//     given earth date
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, and return wrapped errors describing what failed:
//
//   - "execute request: dial tcp: connection refused"
//   - "api /rovers returned status 500"
//   - "decode response: unexpected end of JSON input"
//
// # Type System
//
// Rover and Photo mirror the upstream wire format exactly; values pass through
// the proxy verbatim. Camera and rover attribution on a Photo are optional
// upstream. The client does not invent defaults for them; the render layer
// substitutes "Unknown Camera" and friends so that the data layer stays a
// faithful record of what the API returned.
//
// # Design Rationale
//
// The client is intentionally minimal: no caching, no retries, no mutations.
// Fetches happen on demand (page load and rover selection), and the UI layer
// owns the policy for stale or failed responses.
package nasa
