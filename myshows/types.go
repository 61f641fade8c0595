package myshows

import "encoding/json"

// WatchStatus is a watch-list status accepted by manage.SetShowStatus.
// The client passes the value through unvalidated; unknown strings are
// rejected (or not) by the service itself.
type WatchStatus string

// Watch statuses known to the service.
const (
	StatusWatching  WatchStatus = "watching"
	StatusCancelled WatchStatus = "cancelled"
	StatusLater     WatchStatus = "later"
	StatusRemove    WatchStatus = "remove"
)

// rpcRequest is a single JSON-RPC 2.0 request envelope.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int    `json:"id"`
}

// rpcResponse is a single JSON-RPC 2.0 response envelope.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcErrorBody   `json:"error"`
	ID      json.RawMessage `json:"id"`
}

// rpcErrorBody is the error member of a JSON-RPC response.
type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// serviceError is the error shape returned by the session endpoint.
type serviceError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// loginResponse is the body returned by the session endpoint. A missing
// token is tolerated; the session is then carried by cookies.
type loginResponse struct {
	Token string        `json:"token"`
	Error *serviceError `json:"error"`
}

// searchFilter mirrors the shows.GetCatalog search object. The service
// expects every member present, with null for unset filters, so no field
// uses omitempty.
type searchFilter struct {
	Network     *int    `json:"network"`
	Genre       *int    `json:"genre"`
	Country     *string `json:"country"`
	Year        *int    `json:"year"`
	StartYear   *int    `json:"startYear"`
	EndYear     *int    `json:"endYear"`
	Watching    *bool   `json:"watching"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	Sort        *string `json:"sort"`
	Query       string  `json:"query"`
	WatchStatus *string `json:"watchStatus"`
	Embed       *string `json:"embed"`
	Providers   []int   `json:"providers"`
	JWProviders []int   `json:"jwProviders"`
}

// EpisodeBatchResult reports the outcome of one episode in a batch
// check/uncheck operation.
type EpisodeBatchResult struct {
	EpisodeID int64  `json:"episodeId"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
}
