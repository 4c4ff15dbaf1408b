// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !h.Compare(hash, "password123") {
		t.Fatal("expected the original password to match")
	}
	if h.Compare(hash, "password124") {
		t.Fatal("expected a different password to fail")
	}
}

func TestHasherCostClamping(t *testing.T) {
	testCases := []struct {
		name string
		cost int
	}{
		{"BelowMin", bcrypt.MinCost - 1},
		{"AboveMax", bcrypt.MaxCost + 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHasher(tc.cost)
			if h.cost != bcrypt.DefaultCost {
				t.Fatalf("expected cost %d, got %d", bcrypt.DefaultCost, h.cost)
			}
		})
	}
}

func TestHasherCompareMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if h.Compare("not-a-bcrypt-hash", "password123") {
		t.Fatal("expected a malformed hash to fail comparison")
	}
}
