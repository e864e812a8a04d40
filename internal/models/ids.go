package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/google/uuid"
)

// Receipt references carry the issuing corporation's prefix.
const transactionIDPrefix = "MCD"

// NewID returns a fresh opaque identifier for a User or Payment.
func NewID() string {
	return uuid.NewString()
}

// NewTransactionID builds a human-readable receipt reference: the fixed
// prefix, the base-36 unix-millisecond timestamp, and a 6-character random
// suffix, all upper-cased. The timestamp+random composition makes collisions
// negligible.
func NewTransactionID(now time.Time) (string, error) {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix, err := common.MakeRandBase36String(6)
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}
	return transactionIDPrefix + ts + suffix, nil
}

// NewAuthToken returns a fresh opaque session marker. It carries no
// verifiable claims; it only records that a session is active.
func NewAuthToken(now time.Time) (string, error) {
	suffix, err := common.MakeRandHexString(8)
	if err != nil {
		return "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	return fmt.Sprintf("token_%d_%s", now.UnixMilli(), suffix), nil
}
