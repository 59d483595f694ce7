// Package protocol implements the request envelope consumed by the gateway:
// a structured request record, the rule-based validator that gates it, and
// the URL parser that turns its path into a routable resource.
//
// Everything in this package is pure: no transport, no storage, no state.
package protocol

// Request is the inbound envelope. Date is a numeric epoch-like token kept
// as text; Body is optional and expected to be JSON text for mutating
// methods.
type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Date   string `json:"date"`
	Body   string `json:"body,omitempty"`
}

// Response carries the validation status and, on success, a payload that is
// opaque to the validator.
type Response struct {
	Status string `json:"status"`
	Body   any    `json:"body,omitempty"`
}

// Status strings produced by the validator. These are part of the wire
// contract and must not change.
const (
	StatusOK            = "1 Ok"
	StatusMissingMethod = "missing method"
	StatusIllegalMethod = "illegal method"
	StatusMissingPath   = "missing path"
	StatusMissingDate   = "missing date"
	StatusIllegalDate   = "illegal date"
	StatusMissingBody   = "missing body"
	StatusIllegalBody   = "illegal body"
)

// Statuses produced by the gateway when a validated request cannot be
// served: the path routed to nothing, or the data operation rejected its
// input.
const (
	StatusBadRequest = "4 Bad request"
	StatusNotFound   = "5 Not found"
)
