package chat2pdf

import (
	"testing"
	"time"
)

func TestGenerateFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "afternoon",
			now:  time.Date(2024, 3, 15, 14, 7, 9, 0, time.UTC),
			want: "chatbot_response_20240315_140709.pdf",
		},
		{
			name: "midnight uses 24-hour clock",
			now:  time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			want: "chatbot_response_20231231_000000.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := GenerateFilename(tt.now); got != tt.want {
				t.Errorf("GenerateFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}
