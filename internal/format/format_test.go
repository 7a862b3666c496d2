package format

import "testing"

func epoch(sec int64) *int64 {
	return &sec
}

func TestDateTime(t *testing.T) {
	tests := []struct {
		name string
		sec  *int64
		want string
	}{
		{"nil", nil, "UNKNOWN"},
		{"epoch zero", epoch(0), "Thu, 01 Jan 1970 00:00:00 UTC"},
		{"fixed instant", epoch(1736910000), "Wed, 15 Jan 2025 03:00:00 UTC"},
		{"negative epoch", epoch(-86400), "Wed, 31 Dec 1969 00:00:00 UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateTime(tt.sec); got != tt.want {
				t.Errorf("DateTime = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeOnly(t *testing.T) {
	tests := []struct {
		name string
		sec  *int64
		want string
	}{
		{"nil", nil, "UNKNOWN"},
		{"epoch zero", epoch(0), "00:00"},
		{"afternoon", epoch(1736910000), "03:00"},
		{"sunrise", epoch(1736887620), "20:47"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeOnly(tt.sec); got != tt.want {
				t.Errorf("TimeOnly = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayName(t *testing.T) {
	tests := []struct {
		name string
		sec  *int64
		want string
	}{
		{"nil", nil, "UNKNOWN"},
		{"epoch zero", epoch(0), "Thursday"},
		{"fixed instant", epoch(1736910000), "Wednesday"},
		{"one week later", epoch(1736910000 + 7*86400), "Wednesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayName(tt.sec); got != tt.want {
				t.Errorf("DayName = %q, want %q", got, tt.want)
			}
		})
	}
}
