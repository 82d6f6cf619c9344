package buildinfo

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if got := Current().Version; got != "v1.2.3" {
		t.Errorf("Current().Version = %q, want v1.2.3", got)
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
	if !strings.Contains(Template(), "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
