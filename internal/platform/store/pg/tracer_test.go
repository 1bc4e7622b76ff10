package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	cases := []struct{ in, want string }{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"SELECT\t*\nFROM\r\tflights WHERE  origin =  $1", "SELECT * FROM flights WHERE origin = $1"},
		{"", ""},
	}
	for _, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("compact(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

type line struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	Rows      int     `json:"rows"`
	SQL       string  `json:"sql"`
	Error     string  `json:"error"`
	Component string  `json:"component"`
	Dataset   string  `json:"dataset"`
}

func TestTracer(t *testing.T) {
	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	tr.OnQuery(WithDataset(context.Background(), "flights"), QueryEvent{
		SQL:       "SELECT  *\n FROM flights",
		ElapsedUS: 1500,
		Rows:      40,
	})
	var got line
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if got.Level != "info" || got.SQL != "SELECT * FROM flights" || got.ElapsedMS != 1.5 {
		t.Fatalf("line = %+v", got)
	}
	if got.Rows != 40 || got.Component != "pg" || got.Dataset != "flights" {
		t.Fatalf("line = %+v", got)
	}

	buf.Reset()
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", Slow: true, Err: errors.New("boom")})
	got = line{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Level != "warn" || !got.Slow || got.Error != "boom" || got.Dataset != "" {
		t.Fatalf("slow line = %+v", got)
	}
}
