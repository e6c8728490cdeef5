package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrUnavailable     = errors.New("the finance API could not be reached")
	ErrInvalidResponse = errors.New("the finance API sent a response that could not be parsed")
)

// Problem is the error document sent by the finance API for all
// non-successful responses.
type Problem struct {
	Type      string            `json:"type" example:"about:blank"`
	Title     string            `json:"title" example:"Bad Request"`
	Status    int               `json:"status" example:"400"`
	Detail    string            `json:"detail" example:"Validation failed"`
	Timestamp string            `json:"timestamp" example:"2024-01-05T10:11:12Z"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func (p *Problem) Error() string {
	if p.Detail == "" {
		return fmt.Sprintf("%d %s", p.Status, p.Title)
	}

	return fmt.Sprintf("%d %s: %s", p.Status, p.Title, p.Detail)
}

// SessionError is returned when the finance API rejects the credentials
// of the request. The session of the caller is no longer valid.
type SessionError struct {
	Problem *Problem
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session is not valid: %s", e.Problem.Error())
}

func (e *SessionError) Unwrap() error {
	return e.Problem
}

// maxProblemSize limits how much of an error body is read.
const maxProblemSize = 1 << 20

// problemFromResponse reads the error document of a non-successful response.
//
// If the body is not a problem document, a generic problem carrying the
// response status is returned.
func problemFromResponse(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemSize))

	var p Problem
	if err != nil || json.Unmarshal(body, &p) != nil || (p.Title == "" && p.Status == 0) {
		p = Problem{
			Type:      "unknown",
			Title:     "Error",
			Status:    resp.StatusCode,
			Detail:    "An unexpected error occurred",
			Timestamp: time.Now().In(time.UTC).Format(time.RFC3339),
		}
	}

	if p.Status == 0 {
		p.Status = resp.StatusCode
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &SessionError{Problem: &p}
	}

	return &p
}
