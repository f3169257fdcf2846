package recoemail

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// EmailHasher turns a customer email address into a one-way identifier that
// can be placed in a URL.
type EmailHasher interface {
	Hash(email string) string
}

const (
	algorithmIDKey   = "algorithmId"
	customerEmailKey = "customerEmail"

	// CustomerRecoAlgorithmID selects the customer recommendation algorithm
	// on the recommendation service; it is part of the hashed key.
	CustomerRecoAlgorithmID = "135"
)

// RecommendationKey is a set of named parameters that identify a
// recommendation subject. Its hash is independent of insertion order.
type RecommendationKey struct {
	params map[string]string
}

// NewRecommendationKey returns an empty key.
func NewRecommendationKey() *RecommendationKey {
	return &RecommendationKey{params: map[string]string{}}
}

// SetParameter sets name to value, replacing any previous value.
func (k *RecommendationKey) SetParameter(name, value string) {
	k.params[name] = value
}

// canonical returns name=value pairs sorted by name and joined with '|'.
func (k *RecommendationKey) canonical() []byte {
	names := make([]string, 0, len(k.params))
	for name := range k.params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(k.params[name])
	}
	return []byte(b.String())
}

// Hash returns the decimal xxHash64 digest of the canonical key.
func (k *RecommendationKey) Hash() string {
	return strconv.FormatUint(xxhash.Sum64(k.canonical()), 10)
}

// RecommendationKeyHasher hashes an email together with an algorithm id.
type RecommendationKeyHasher struct {
	AlgorithmID string
}

// Hash implements EmailHasher.
func (h RecommendationKeyHasher) Hash(email string) string {
	key := NewRecommendationKey()
	key.SetParameter(algorithmIDKey, h.AlgorithmID)
	key.SetParameter(customerEmailKey, email)
	return key.Hash()
}

// DefaultEmailHasher is used by generators built without WithEmailHasher.
var DefaultEmailHasher EmailHasher = RecommendationKeyHasher{AlgorithmID: CustomerRecoAlgorithmID}

// HashCustomerEmail hashes email with DefaultEmailHasher. An empty email
// yields "".
func HashCustomerEmail(email string) string {
	return hashCustomerEmail(DefaultEmailHasher, email)
}

func hashCustomerEmail(h EmailHasher, email string) string {
	if email == "" {
		return ""
	}
	return h.Hash(email)
}
