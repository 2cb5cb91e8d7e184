package refnum

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

var numberPattern = regexp.MustCompile(`^[A-Z]+-(\d+)-([A-Z0-9]{5})$`)

func TestNewFormat(t *testing.T) {
	for _, prefix := range []string{PolicyPrefix, ClaimPrefix, PaymentPrefix} {
		n := New(prefix)
		if !strings.HasPrefix(n, prefix+"-") {
			t.Fatalf("number %q missing prefix %q", n, prefix)
		}

		m := numberPattern.FindStringSubmatch(n)
		if m == nil {
			t.Fatalf("number %q does not match expected format", n)
		}

		millis, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			t.Fatalf("timestamp segment %q: %v", m[1], err)
		}
		now := time.Now().UnixMilli()
		if millis > now || millis < now-int64(time.Minute/time.Millisecond) {
			t.Fatalf("timestamp segment %d too far from now %d", millis, now)
		}
	}
}

func TestNewUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := New(ClaimPrefix)
		if seen[n] {
			t.Fatalf("duplicate number %q after %d draws", n, i)
		}
		seen[n] = true
	}
}
