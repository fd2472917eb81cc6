package vergen

import "testing"

func TestDefaultInstructions(t *testing.T) {
	in := DefaultInstructions()

	if !in.Build.Enabled {
		t.Error("Build.Enabled = false, want true")
	}
	if !in.Build.Timestamp {
		t.Error("Build.Timestamp = false, want true")
	}
	if in.Build.Timezone != TimeZoneUTC {
		t.Errorf("Build.Timezone = %v, want %v", in.Build.Timezone, TimeZoneUTC)
	}
	if in.Build.Kind != KindTimestamp {
		t.Errorf("Build.Kind = %v, want %v", in.Build.Kind, KindTimestamp)
	}
	if !in.Build.Semver {
		t.Error("Build.Semver = false, want true")
	}
	if !in.Toolchain.Enabled || !in.Toolchain.Version || !in.Toolchain.Platform {
		t.Errorf("Toolchain defaults = %+v, want everything enabled", in.Toolchain)
	}
}

func TestBuildHasEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Build
		want bool
	}{
		{
			name: "defaults",
			cfg:  DefaultBuild(),
			want: true,
		},
		{
			name: "master switch off",
			cfg:  Build{Enabled: false, Timestamp: true, Semver: true},
			want: false,
		},
		{
			name: "timestamp only",
			cfg:  Build{Enabled: true, Timestamp: true, Semver: false},
			want: true,
		},
		{
			name: "semver only",
			cfg:  Build{Enabled: true, Timestamp: false, Semver: true},
			want: true,
		},
		{
			name: "both sub-flags off",
			cfg:  Build{Enabled: true, Timestamp: false, Semver: false},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.HasEnabled(); got != tt.want {
				t.Errorf("HasEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToolchainHasEnabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  Toolchain
		want bool
	}{
		{"defaults", DefaultToolchain(), true},
		{"master switch off", Toolchain{Enabled: false, Version: true, Platform: true}, false},
		{"version only", Toolchain{Enabled: true, Version: true}, true},
		{"platform only", Toolchain{Enabled: true, Platform: true}, true},
		{"both sub-flags off", Toolchain{Enabled: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.HasEnabled(); got != tt.want {
				t.Errorf("HasEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeZoneText(t *testing.T) {
	tests := []struct {
		text string
		want TimeZone
	}{
		{"utc", TimeZoneUTC},
		{"UTC", TimeZoneUTC},
		{"local", TimeZoneLocal},
		{"Local", TimeZoneLocal},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var tz TimeZone
			if err := tz.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText(%q) error: %v", tt.text, err)
			}
			if tz != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, tz, tt.want)
			}
		})
	}

	var tz TimeZone
	if err := tz.UnmarshalText([]byte("mars")); err == nil {
		t.Error("UnmarshalText(\"mars\") should fail for unknown timezone")
	}
}

func TestTimeZoneRoundTrip(t *testing.T) {
	for _, tz := range []TimeZone{TimeZoneUTC, TimeZoneLocal} {
		text, err := tz.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", tz, err)
		}
		var got TimeZone
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != tz {
			t.Errorf("round trip of %v = %v", tz, got)
		}
	}
}

func TestTimestampKindText(t *testing.T) {
	tests := []struct {
		text string
		want TimestampKind
	}{
		{"date", KindDateOnly},
		{"time", KindTimeOnly},
		{"date-and-time", KindDateAndTime},
		{"timestamp", KindTimestamp},
		{"all", KindAll},
		{"ALL", KindAll},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var k TimestampKind
			if err := k.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText(%q) error: %v", tt.text, err)
			}
			if k != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, k, tt.want)
			}
		})
	}

	var k TimestampKind
	if err := k.UnmarshalText([]byte("yearly")); err == nil {
		t.Error("UnmarshalText(\"yearly\") should fail for unknown kind")
	}
}

func TestTimestampKindRoundTrip(t *testing.T) {
	kinds := []TimestampKind{KindDateOnly, KindTimeOnly, KindDateAndTime, KindTimestamp, KindAll}
	for _, kind := range kinds {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", kind, err)
		}
		var got TimestampKind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != kind {
			t.Errorf("round trip of %v = %v", kind, got)
		}
	}
}
