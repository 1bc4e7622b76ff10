package domain

import (
	"testing"

	perr "vizdash/internal/platform/errors"
)

func TestParseSource(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Source
		str  string
	}{
		{"", Source{Kind: SourceSample}, "sample"},
		{" Sample ", Source{Kind: SourceSample}, "sample"},
		{"file:/data/flights.csv", Source{Kind: SourceFile, Target: "/data/flights.csv"}, "file:/data/flights.csv"},
		{"PG: public.athlete_events", Source{Kind: SourcePG, Target: "public.athlete_events"}, "pg:public.athlete_events"},
		{"ch:flights", Source{Kind: SourceCH, Target: "flights"}, "ch:flights"},
		{"url:https://cdn.example/athlete_events.csv.gz", Source{Kind: SourceURL, Target: "https://cdn.example/athlete_events.csv.gz"}, "url:https://cdn.example/athlete_events.csv.gz"},
	}
	for _, tc := range cases {
		got, err := ParseSource(tc.in)
		if err != nil {
			t.Fatalf("ParseSource(%q): %v", tc.in, err)
		}
		if got != tc.want || got.String() != tc.str {
			t.Fatalf("ParseSource(%q) = %+v (%s), want %+v (%s)", tc.in, got, got, tc.want, tc.str)
		}
	}

	for _, bad := range []string{"pg:", "s3:bucket/key", "flights.csv", "url:ftp://host/flights.csv"} {
		_, err := ParseSource(bad)
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("ParseSource(%q) err = %v, want invalid argument", bad, err)
		}
	}
}
