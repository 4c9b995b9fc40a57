package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPairOrdersLexicographically(t *testing.T) {
	low, high := CanonicalPair("bob", "alice")
	assert.Equal(t, "alice", low)
	assert.Equal(t, "bob", high)

	low, high = CanonicalPair("alice", "bob")
	assert.Equal(t, "alice", low)
	assert.Equal(t, "bob", high)
}

func TestCanonicalPairIDIsDirectionIndependent(t *testing.T) {
	assert.Equal(t, CanonicalPairID("u1", "u2"), CanonicalPairID("u2", "u1"))
	assert.Equal(t, "PAIR#u1#u2", CanonicalPairID("u2", "u1"))
}

func TestCanonicalPairIDDistinctPairsDiffer(t *testing.T) {
	assert.NotEqual(t, CanonicalPairID("u1", "u2"), CanonicalPairID("u1", "u3"))
}
