// Package refnum generates business-facing reference numbers for
// policies, claims and payments. Numbers are unique in practice but not
// guaranteed; the store's unique index is the authority and callers
// retry with a fresh number on conflict.
package refnum

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefixes for the supported record kinds.
const (
	PolicyPrefix  = "POL"
	ClaimPrefix   = "CLM"
	PaymentPrefix = "PAY"
)

const suffixLen = 5

// New returns a reference number of the form PREFIX-<unix millis>-<rand>,
// e.g. "CLM-1717430400000-9F2A1".
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	suffix := strings.ToUpper(raw[:suffixLen])
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
