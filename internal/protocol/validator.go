package protocol

import (
	"encoding/json"
	"strconv"
	"strings"
)

// validMethods is the fixed set of methods a request may carry.
var validMethods = []string{"create", "read", "update", "delete", "echo"}

// Validate gates a Request before it reaches any data operation. Rules are
// evaluated in a fixed order and the first violation wins; the returned
// Response carries the status of that violation, or StatusOK.
//
// Body rules are deliberately asymmetric: create, update and echo all
// require a non-empty body, but only create and update have it checked for
// JSON validity. An echo body may be any text, and read/delete bodies are
// never inspected.
func Validate(request Request) Response {
	if request.Method == "" {
		return Response{Status: StatusMissingMethod}
	}

	if !isValidMethod(request.Method) {
		return Response{Status: StatusIllegalMethod}
	}

	if request.Path == "" {
		return Response{Status: StatusMissingPath}
	}

	if request.Date == "" {
		return Response{Status: StatusMissingDate}
	}

	// The date token must be a base-10 integer within int64 range.
	if _, err := strconv.ParseInt(request.Date, 10, 64); err != nil {
		return Response{Status: StatusIllegalDate}
	}

	if (request.Method == "create" || request.Method == "update" || request.Method == "echo") &&
		request.Body == "" {
		return Response{Status: StatusMissingBody}
	}

	// Syntax-only JSON check: any valid JSON value passes, no schema is
	// applied.
	if request.Body != "" &&
		(request.Method == "create" || request.Method == "update") {
		if !json.Valid([]byte(request.Body)) {
			return Response{Status: StatusIllegalBody}
		}
	}

	return Response{Status: StatusOK}
}

func isValidMethod(method string) bool {
	lowered := strings.ToLower(method)
	for _, m := range validMethods {
		if m == lowered {
			return true
		}
	}
	return false
}
