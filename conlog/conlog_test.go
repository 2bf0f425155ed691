package conlog

import (
	"fmt"
	"testing"
)

func TestSinks(t *testing.T) {
	var got []string
	SetPrintf(func(format string, v ...interface{}) {
		got = append(got, fmt.Sprintf(format, v...))
	})
	SetDebugPrintf(func(format string, v ...interface{}) {
		got = append(got, "D "+fmt.Sprintf(format, v...))
	})
	Printf("a %d", 1)
	DPrintf("b %d", 2)
	if len(got) != 2 || got[0] != "a 1" || got[1] != "D b 2" {
		t.Errorf("got %v", got)
	}
}

func TestUnsetSinks(t *testing.T) {
	SetPrintf(nil)
	SetDebugPrintf(nil)
	// no sink configured, both must be silent no-ops
	Printf("dropped %d", 1)
	DPrintf("dropped %d", 2)
}
