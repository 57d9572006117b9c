package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestStaticFSServesTooltipScript(t *testing.T) {
	data, err := fs.ReadFile(StaticFS(), "tooltip.js")
	if err != nil {
		t.Fatalf("read tooltip.js: %v", err)
	}
	if string(data) != TooltipScript() {
		t.Error("StaticFS and TooltipScript disagree")
	}
	for _, want := range []string{`getElementById("tooltip")`, "data-tooltip", "mouseleave"} {
		if !strings.Contains(TooltipScript(), want) {
			t.Errorf("script missing %q", want)
		}
	}
}
