package recoemail

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/ignite/recommendations-email-client/internal/pkg/logger"
)

// ContextMap holds the channel context parameters of one recommendation
// slot. Entries keep their insertion order, which is also their order in
// the encoded ccp token.
type ContextMap struct {
	entries []contextEntry
}

type contextEntry struct {
	name  domain.ContextParamName
	value string
}

// Set adds name or replaces its value in place.
func (m *ContextMap) Set(name domain.ContextParamName, value string) {
	for i := range m.entries {
		if m.entries[i].name == name {
			m.entries[i].value = value
			return
		}
	}
	m.entries = append(m.entries, contextEntry{name: name, value: value})
}

// Get returns the value stored for name.
func (m *ContextMap) Get(name domain.ContextParamName) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, e := range m.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return "", false
}

// Len returns the number of parameters. A nil map is empty.
func (m *ContextMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Names returns the parameter names in insertion order.
func (m *ContextMap) Names() []domain.ContextParamName {
	if m == nil {
		return nil
	}
	names := make([]domain.ContextParamName, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.name
	}
	return names
}

// MarshalJSON writes the map as a JSON object of strings in insertion order.
func (m *ContextMap) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	if m != nil {
		for i, e := range m.entries {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSONString(&b, string(e.name)); err != nil {
				return nil, err
			}
			b.WriteByte(':')
			if err := writeJSONString(&b, e.value); err != nil {
				return nil, err
			}
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// The recommendation service decodes tokens produced with HTML-safe string
// escaping, which also covers '=' and the apostrophe.
var htmlSafeReplacer = strings.NewReplacer("=", `\u003d`, "'", `\u0027`)

func writeJSONString(b *bytes.Buffer, s string) error {
	quoted, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.WriteString(htmlSafeReplacer.Replace(string(quoted)))
	return nil
}

// marshalContext is swapped in tests to exercise the failure path.
var marshalContext = func(m *ContextMap) ([]byte, error) { return m.MarshalJSON() }

// EncodeContext serializes ccp into the URL-safe token carried by the ccp
// query parameter: a JSON object, UTF-8 encoded, then unpadded base64url.
// An empty map yields "". Serialization failures are logged and also yield "",
// so the URL is still generated without context.
func EncodeContext(ccp *ContextMap) string {
	if ccp.Len() == 0 {
		return ""
	}
	raw, err := marshalContext(ccp)
	if err != nil {
		logger.Error("recoemail: serializing ccp map to base64 failed", "error", err)
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeContext reverses EncodeContext. Keys come back as a plain map, so
// order is not preserved.
func DecodeContext(token string) (map[string]string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FormatAmount renders a monetary amount the way the recommendation service
// expects it: shortest round-trip digits with at least one fractional digit
// ("100.0", "25.5"), switching to "d.dddE±n" outside [1e-3, 1e7).
func FormatAmount(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(n)
}

// Float returns a pointer to v, for the optional amount fields of KohlsCashRequest.
func Float(v float64) *float64 { return &v }
