package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "canonical", in: "2025-01-03", want: New(2025, time.January, 3)},
		{name: "permissive", in: "2025-7-1", want: New(2025, time.July, 1)},
		{name: "garbage", in: "not-a-date", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "rfc3339", in: "2025-01-03T10:30:00Z", want: New(2025, time.January, 3)},
		{name: "rfc3339 with offset", in: "2025-01-03T23:30:00+02:00", want: New(2025, time.January, 3)},
		{name: "date only", in: "2025-01-03", want: New(2025, time.January, 3)},
		{name: "garbage", in: "not-a-date", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	// Out-of-range day components roll over like time.Date does.
	got := New(2025, time.January, 32)
	want := New(2025, time.February, 1)
	if got != want {
		t.Errorf("New(2025, January, 32) = %v, want %v", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.February, 29)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	if string(data) != `"2024-02-29"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, "2024-02-29")
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
