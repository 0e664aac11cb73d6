package llm

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "http 429",
			err:  &APIError{Status: 429, Body: `{"error":{"message":"slow down"}}`},
			want: true,
		},
		{
			name: "wrapped http 429",
			err:  fmt.Errorf("generate: %w", &APIError{Status: 429}),
			want: true,
		},
		{
			name: "openai quota code on 403",
			err:  &APIError{Status: 403, Body: `{"error":{"code":"insufficient_quota"}}`},
			want: true,
		},
		{
			name: "anthropic rate limit code on 400",
			err:  &APIError{Status: 400, Body: `{"type":"error","error":{"type":"rate_limit_error"}}`},
			want: true,
		},
		{
			name: "http 500",
			err:  &APIError{Status: 500, Body: "internal"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRateLimited(tt.err); got != tt.want {
				t.Errorf("IsRateLimited() = %v, want %v", got, tt.want)
			}
		})
	}
}
