package envycontrol

import (
	"strconv"
	"strings"
	"testing"
)

func TestSwitchRequestArgs(t *testing.T) {
	tests := []struct {
		name string
		req  SwitchRequest
		want string
	}{
		{
			name: "integrated ignores every toggle",
			req: SwitchRequest{
				Mode: ModeIntegrated, Rtd3Enabled: true, Rtd3Level: Rtd3FineGrained,
				ForceComp: true, CoolbitsEnabled: true, CoolbitsValue: 28,
			},
			want: "-s integrated --verbose",
		},
		{
			name: "hybrid without rtd3",
			req:  SwitchRequest{Mode: ModeHybrid, Rtd3Level: Rtd3FineGrained},
			want: "-s hybrid --verbose",
		},
		{
			name: "hybrid with rtd3 enabled",
			req:  SwitchRequest{Mode: ModeHybrid, Rtd3Enabled: true, Rtd3Level: Rtd3FineGrainedAmpere},
			want: "-s hybrid --rtd3 3 --verbose",
		},
		{
			name: "hybrid rtd3 level gated by enable flag",
			req:  SwitchRequest{Mode: ModeHybrid, Rtd3Enabled: false, Rtd3Level: Rtd3CoarseGrained},
			want: "-s hybrid --verbose",
		},
		{
			name: "nvidia with coolbits only",
			req:  SwitchRequest{Mode: ModeNvidia, CoolbitsEnabled: true, CoolbitsValue: 28},
			want: "-s nvidia --coolbits 28 --verbose",
		},
		{
			name: "nvidia with force composition only",
			req:  SwitchRequest{Mode: ModeNvidia, ForceComp: true},
			want: "-s nvidia --force-comp --verbose",
		},
		{
			name: "nvidia with both tuning flags",
			req:  SwitchRequest{Mode: ModeNvidia, ForceComp: true, CoolbitsEnabled: true, CoolbitsValue: 31},
			want: "-s nvidia --force-comp --coolbits 31 --verbose",
		},
		{
			name: "nvidia ignores rtd3",
			req:  SwitchRequest{Mode: ModeNvidia, Rtd3Enabled: true, Rtd3Level: Rtd3FineGrained},
			want: "-s nvidia --verbose",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(tt.req.Args(), " ")
			if got != tt.want {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		out  string
		want Mode
	}{
		{"Current graphics mode is: integrated\n", ModeIntegrated},
		{"Current graphics mode is: Hybrid\n", ModeHybrid},
		{"NVIDIA", ModeNvidia},
		// Both names present: the check order decides, integrated first.
		{"switched from hybrid to integrated", ModeIntegrated},
		{"no gpu here", ModeUnknown},
		{"", ModeUnknown},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.out); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.out, got, tt.want)
		}
	}
}

func TestModeStringMatchesCLITokens(t *testing.T) {
	want := []string{"integrated", "hybrid", "nvidia"}
	for i, m := range Modes() {
		if m.String() != want[i] {
			t.Errorf("Modes()[%d].String() = %q, want %q", i, m.String(), want[i])
		}
	}
	if ModeUnknown.String() != "unknown" {
		t.Errorf("ModeUnknown.String() = %q", ModeUnknown.String())
	}
}

func TestRtd3LevelNextCycles(t *testing.T) {
	l := Rtd3Disabled
	seen := map[Rtd3Level]bool{}
	for range Rtd3Levels() {
		seen[l] = true
		l = l.Next()
	}
	if l != Rtd3Disabled {
		t.Errorf("Next did not wrap back to Disabled, ended at %v", l)
	}
	if len(seen) != len(Rtd3Levels()) {
		t.Errorf("Next visited %d distinct levels, want %d", len(seen), len(Rtd3Levels()))
	}
}

func TestRtd3LabelCarriesCode(t *testing.T) {
	for _, l := range Rtd3Levels() {
		if !strings.HasPrefix(l.Label(), strconv.Itoa(int(l))) {
			t.Errorf("Label() = %q does not start with code %d", l.Label(), int(l))
		}
	}
}
