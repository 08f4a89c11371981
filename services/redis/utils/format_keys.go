package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format string every time, potentially confusing the key format.
 */

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerationKey holds the token that namespaces every cached report.
// Replacing it orphans all report keys at once.
const GenerationKey = "arcadia:reports:generation"

// FormatReportKey builds "arcadia:reports:{generation}:{report}:{digest}",
// where digest identifies the applied filter.
func FormatReportKey(generation, report string, filter []byte) string {
	return fmt.Sprintf("arcadia:reports:%s:%s:%s", generation, report, FilterDigest(filter))
}

func FilterDigest(filter []byte) string {
	sum := sha256.Sum256(filter)
	return hex.EncodeToString(sum[:8])
}
