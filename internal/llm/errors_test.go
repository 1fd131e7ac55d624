package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", &APIError{StatusCode: 429, Type: "rate_limit_exceeded"}, true},
		{"server error", &APIError{StatusCode: 503, Type: "server_error"}, true},
		{"quota exhausted", &APIError{StatusCode: 429, Type: "insufficient_quota"}, false},
		{"bad credentials", &APIError{StatusCode: 401, Type: "invalid_request_error"}, false},
		{"wrapped api error", fmt.Errorf("analyze: %w", &APIError{StatusCode: 500}), true},
		{"deadline", context.DeadlineExceeded, true},
		{"client timeout string", errors.New("Post \"x\": net/http: request canceled (Client.Timeout exceeded while awaiting headers)"), true},
		{"plain failure", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransient(tc.err); got != tc.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
