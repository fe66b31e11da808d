package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAccessible(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Microsecond)

	tests := []struct {
		name      string
		chapter   *Chapter
		hasUnlock bool
		expected  bool
	}{
		{name: "no publish time", chapter: &Chapter{}, expected: true},
		{name: "published in the past", chapter: &Chapter{PublishAt: &past}, expected: true},
		{name: "publish time equals now", chapter: &Chapter{PublishAt: &now}, expected: true},
		{name: "one microsecond in the future", chapter: &Chapter{PublishAt: &future}, expected: false},
		{name: "future but unlocked", chapter: &Chapter{PublishAt: &future}, hasUnlock: true, expected: true},
		{name: "nil chapter", chapter: nil, hasUnlock: true, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsAccessible(tt.chapter, now, tt.hasUnlock))
		})
	}
}

func TestIdentity_IsAnonymous(t *testing.T) {
	t.Parallel()

	var nilIdentity *Identity
	assert.True(t, nilIdentity.IsAnonymous())
	assert.True(t, (&Identity{}).IsAnonymous())
}
