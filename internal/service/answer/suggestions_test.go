package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSuggestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "clean array",
			raw:  `["What is X?", "How does Y work?", "Where is Z?"]`,
			want: []string{"What is X?", "How does Y work?", "Where is Z?"},
		},
		{
			name: "prose around array with duplicate",
			raw:  `Here you go: ["A?", "B?", "A?"]`,
			want: []string{"A?", "B?"},
		},
		{
			name: "trailing prose after array",
			raw:  `["A?", "B?"] Let me know if you need more!`,
			want: []string{"A?", "B?"},
		},
		{
			name: "trailing prose with its own bracket",
			raw:  `["A?", "B?"] More in [the docs](https://example.com).`,
			want: []string{"A?", "B?"},
		},
		{
			name: "more than three items truncated",
			raw:  `["A?", "B?", "C?", "D?", "E?"]`,
			want: []string{"A?", "B?", "C?"},
		},
		{
			name: "no brackets",
			raw:  "Sorry, I cannot produce suggestions.",
			want: nil,
		},
		{
			name: "malformed json inside brackets",
			raw:  `["A?", "B?`,
			want: nil,
		},
		{
			name: "bracket content is not strings",
			raw:  `[1, 2, 3]`,
			want: nil,
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: []string{},
		},
		{
			name: "whitespace and empty items dropped",
			raw:  `["  A?  ", "", "B?"]`,
			want: []string{"A?", "B?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSuggestions(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), maxSuggestions)
		})
	}
}
