package shared

import (
	"testing"
)

func TestGetSessionFlags(t *testing.T) {
	t.Parallel()

	flags := GetSessionFlags()

	if len(flags) == 0 {
		t.Fatal("GetSessionFlags() returned no flags")
	}

	want := map[string]bool{
		ShellFlag:   false,
		RawFlag:     false,
		LogFileFlag: false,
		VerboseFlag: false,
	}

	for _, flag := range flags {
		for _, name := range flag.Names() {
			if _, ok := want[name]; ok {
				want[name] = true
			}
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("flag %q is missing from GetSessionFlags()", name)
		}
	}
}
