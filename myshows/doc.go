// Package myshows provides a client for the myshows.me JSON-RPC v3 API.
//
// The client authenticates lazily: the first RPC issued through it triggers
// a single login exchange against the session endpoint, and the resulting
// bearer token (or session cookie) is reused for every subsequent call.
// Login is attempted at most once per Client; concurrent first calls share
// the outcome of one login request.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := myshows.NewClient("user", "secret", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	result, err := client.SearchShows(ctx, "Breaking Bad", 2008, 0)
//
// Typed operations return the raw JSON payload of the RPC result; callers
// decide how much of the method-specific shape to decode.
//
// # Error Handling
//
// The package distinguishes three failure classes:
//
//   - LoginError: the authentication exchange failed (network, HTTP status,
//     or a service-reported message)
//   - APIError: the RPC endpoint answered with a non-2xx status
//   - RPCError: a well-formed JSON-RPC error, tagged with the method name
package myshows
