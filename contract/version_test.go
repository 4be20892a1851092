package contract

import (
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		major   int
		minor   int
		patch   int
		wantErr bool
	}{
		{"2.1.19", 2, 1, 19, false},
		{"2.1.19 (Claude Code)", 2, 1, 19, false},
		{"  1.0.0\n", 1, 0, 0, false},
		{"10.20.30-beta", 10, 20, 30, false},
		{"2.1", 0, 0, 0, true},
		{"not a version", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseVersion(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q): %v", tt.input, err)
			}
			if v.Major != tt.major || v.Minor != tt.minor || v.Patch != tt.patch {
				t.Errorf("ParseVersion(%q) = %d.%d.%d, want %d.%d.%d",
					tt.input, v.Major, v.Minor, v.Patch, tt.major, tt.minor, tt.patch)
			}
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2.1.19", "2.1.19", 0},
		{"2.1.20", "2.1.19", 1},
		{"2.1.18", "2.1.19", -1},
		{"2.2.0", "2.1.19", 1},
		{"3.0.0", "2.9.9", 1},
		{"1.9.9", "2.0.0", -1},
	}

	for _, tt := range tests {
		a := MustParseVersion(tt.a)
		b := MustParseVersion(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsNewerOlder(t *testing.T) {
	newer := MustParseVersion("2.2.0")
	older := MustParseVersion("2.1.19")

	if !newer.IsNewerThan(older) {
		t.Error("IsNewerThan failed")
	}
	if !older.IsOlderThan(newer) {
		t.Error("IsOlderThan failed")
	}
	if newer.IsOlderThan(older) {
		t.Error("inverted comparison")
	}
}

func TestTestedVersionParses(t *testing.T) {
	// The pinned constant must always parse.
	v := MustParseVersion(TestedCLIVersion)
	if v.Raw != TestedCLIVersion {
		t.Errorf("Raw = %q, want %q", v.Raw, TestedCLIVersion)
	}
}
