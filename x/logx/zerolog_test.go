//go:build !rp2040 && !rp2350

package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestZerolog_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	z := NewJSON(&buf, LevelDebug)
	z.Info("phase", "from", "idle_wait", "to", "fade_in")
	s := buf.String()
	if !strings.Contains(s, `"from":"idle_wait"`) || !strings.Contains(s, `"message":"phase"`) {
		t.Fatalf("unexpected json %q", s)
	}
}
