package version

import (
	"runtime"
	"testing"

	kit "vizdash/internal/platform/testkit"
)

func TestInfo(t *testing.T) {
	kit.Swap(t, &version, "v0.3.0")
	kit.Swap(t, &commit, "4f1c2a9")

	got := Info("vizdash-api")
	want := BuildInfo{Service: "vizdash-api", Version: "v0.3.0", Commit: "4f1c2a9", Date: date, GoVersion: runtime.Version()}
	if got != want {
		t.Fatalf("Info = %+v, want %+v", got, want)
	}
}

func TestInfo_CommitFallback(t *testing.T) {
	kit.Swap(t, &commit, "")
	if got := Info("vizdash-render").Commit; got == "" {
		t.Fatal("commit should never be empty")
	}
}
