package vergen

import "testing"

func TestOutputAddAndGet(t *testing.T) {
	out := NewOutput()
	out.add(KeyBuildDate, "2026-08-26")
	out.add(KeyBuildSemver, "1.2.3")

	if got := out.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	v, ok := out.Get(KeyBuildDate)
	if !ok || v != "2026-08-26" {
		t.Errorf("Get(KeyBuildDate) = %q, %v; want %q, true", v, ok, "2026-08-26")
	}

	if _, ok := out.Get(KeyBuildTime); ok {
		t.Error("Get(KeyBuildTime) should report a missing key")
	}
}

func TestOutputWriteOnce(t *testing.T) {
	out := NewOutput()
	out.add(KeyBuildSemver, "1.0.0")
	out.add(KeyBuildSemver, "2.0.0")

	v, _ := out.Get(KeyBuildSemver)
	if v != "1.0.0" {
		t.Errorf("Get(KeyBuildSemver) = %q, want first-written %q", v, "1.0.0")
	}
	if out.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after duplicate add", out.Len())
	}
}

func TestOutputInsertionOrder(t *testing.T) {
	out := NewOutput()
	out.add(KeyGoArch, "arm64")
	out.add(KeyBuildDate, "2026-08-26")
	out.add(KeyBuildTime, "14-02-33")

	want := []Key{KeyGoArch, KeyBuildDate, KeyBuildTime}
	got := out.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// The returned slice is a copy; mutating it must not affect the output.
	got[0] = KeyBuildSemver
	if out.Keys()[0] != KeyGoArch {
		t.Error("Keys() should return a copy of the insertion order")
	}
}

func TestKeyNames(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyBuildDate, "VERGEN_BUILD_DATE"},
		{KeyBuildTime, "VERGEN_BUILD_TIME"},
		{KeyBuildTimestamp, "VERGEN_BUILD_TIMESTAMP"},
		{KeyBuildSemver, "VERGEN_BUILD_SEMVER"},
		{KeyGoVersion, "VERGEN_GO_VERSION"},
		{KeyGoOS, "VERGEN_GO_OS"},
		{KeyGoArch, "VERGEN_GO_ARCH"},
	}

	for _, tt := range tests {
		if got := tt.key.Name(); got != tt.want {
			t.Errorf("Key(%d).Name() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
