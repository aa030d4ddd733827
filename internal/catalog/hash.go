package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nanocorp/wiring/internal/dsl"
	"github.com/nanocorp/wiring/internal/wire"
)

// Domain prefix for content-addressed revision identity.
// Version suffix enables future algorithm migration.
const domainCircuit = "wiring/circuit/v1"

// ContentHash computes the content address of a circuit description.
//
// The hash covers the canonical definition lines in definition order,
// NFC-normalized, joined by newlines. Two circuits with the same wires
// in the same order hash identically regardless of how their
// definitions were originally written (constant side in AND/OR,
// surrounding whitespace, comments).
func ContentHash(wires []wire.Wire) string {
	canonical := norm.NFC.String(strings.Join(dsl.FormatAll(wires), "\n"))
	return hashWithDomain(domainCircuit, []byte(canonical))
}

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
