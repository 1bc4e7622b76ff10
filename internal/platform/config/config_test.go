package config

import (
	"testing"
	"time"

	kit "vizdash/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("VIZDASH_").Prefix("API_")
	if got := api.Key("PORT"); got != "VIZDASH_API_PORT" {
		t.Fatalf("Key() = %q, want VIZDASH_API_PORT", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("SERVICE_PGSQL_")
	t.Setenv("SERVICE_PGSQL_DBURL", "  postgres://localhost/vizdash ")
	if got := c.MustString("DBURL"); got != "postgres://localhost/vizdash" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("DATASET_FLIGHTS_")
	t.Setenv("DATASET_FLIGHTS_LIMIT", " 5000 ")
	if got := c.MustInt("LIMIT"); got != 5000 {
		t.Fatalf("MustInt = %d, want 5000", got)
	}
	t.Setenv("DATASET_FLIGHTS_BAD", "lots")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
}

func TestPorts(t *testing.T) {
	c := New().Prefix("P_")
	cases := []struct {
		in, want string
	}{
		{"4000", ":4000"},
		{":8080", ":8080"},
		{"127.0.0.1:9000", "127.0.0.1:9000"},
	}
	for _, tc := range cases {
		t.Setenv("P_PORT", tc.in)
		if got := c.MustPort("PORT"); got != tc.want {
			t.Fatalf("MustPort(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if got := c.MayPort("PORT", ":1"); got != tc.want {
			t.Fatalf("MayPort(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	t.Setenv("P_PORT", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("PORT") })
	if got := c.MayPort("PORT", ":4000"); got != ":4000" {
		t.Fatalf("MayPort invalid = %q, want default", got)
	}
	if got := c.MayPort("UNSET", ":4000"); got != ":4000" {
		t.Fatalf("MayPort unset = %q, want default", got)
	}
}

func TestRequire(t *testing.T) {
	c := New().Prefix("R_")
	t.Setenv("R_A", "1")
	kit.MustNotPanic(t, func() { c.Require("A") })
	kit.MustPanic(t, func() { c.Require("A", "B") })
}

func TestMayGetters(t *testing.T) {
	c := New().Prefix("M_")

	if got := c.MayString("SOURCE", "sample"); got != "sample" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("M_SOURCE", " file:/data/flights.csv ")
	if got := c.MayString("SOURCE", "sample"); got != "file:/data/flights.csv" {
		t.Fatalf("MayString = %q", got)
	}

	t.Setenv("M_LIMIT", "nope")
	if got := c.MayInt("LIMIT", 5000); got != 5000 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	t.Setenv("M_LIMIT", "250")
	if got := c.MayInt("LIMIT", 5000); got != 250 {
		t.Fatalf("MayInt = %d", got)
	}

	t.Setenv("M_SWAGGER", "false")
	if c.MayBool("SWAGGER", true) {
		t.Fatal("MayBool = true, want false")
	}
	t.Setenv("M_SWAGGER", "maybe")
	if !c.MayBool("SWAGGER", true) {
		t.Fatal("MayBool invalid should return default")
	}

	t.Setenv("M_TIMEOUT", "2s")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("M_TIMEOUT", "soon")
	if got := c.MayDuration("TIMEOUT", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("C_")
	def := []string{"*"}
	if got := c.MayCSV("ORIGINS", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default = %v", got)
	}
	t.Setenv("C_ORIGINS", " https://a.example , ,https://b.example ")
	got := c.MayCSV("ORIGINS", def)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("C_ORIGINS", " , ")
	if got := c.MayCSV("ORIGINS", def); len(got) != 1 {
		t.Fatalf("MayCSV blanks = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("FORMAT", "png", "png", "svg"); got != "png" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_FORMAT", "SVG")
	if got := c.MayEnum("FORMAT", "png", "png", "svg"); got != "svg" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("E_FORMAT", "gif")
	kit.MustPanic(t, func() { _ = c.MayEnum("FORMAT", "png", "png", "svg") })
}
