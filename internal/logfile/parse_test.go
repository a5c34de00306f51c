package logfile

import (
	"testing"

	"github.com/rewired-gh/loganalyzer/internal/models"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    models.LogEntry
		wantErr bool
	}{
		{
			name: "plain line",
			line: "2015 06 01 00 10",
			want: models.LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 0, Minute: 10},
		},
		{
			name: "extra fields ignored",
			line: "2015 12 31 23 59 GET /index.html 200",
			want: models.LogEntry{Year: 2015, Month: 12, Day: 31, Hour: 23, Minute: 59},
		},
		{
			name: "tabs and repeated spaces",
			line: "2015\t6  1\t 7 5",
			want: models.LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 7, Minute: 5},
		},
		{
			name:    "too few fields",
			line:    "2015 06 01 00",
			wantErr: true,
		},
		{
			name:    "non-numeric hour",
			line:    "2015 06 01 xx 10",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			line:    "2015 06 01 24 10",
			wantErr: true,
		},
		{
			name:    "month out of range",
			line:    "2015 13 01 10 10",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLine(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
