//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"slotwise/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("normalizes email to lower case", func(t *testing.T) {
		g, err := booking.NewGuest("Ada", " Ada.Lovelace@Example.COM ", "")
		require.NoError(t, err)
		assert.Equal(t, "ada.lovelace@example.com", g.Email())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := booking.NewGuest("   ", "a@example.com", "")
		assert.ErrorIs(t, err, booking.ErrEmptyGuestName)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := booking.NewGuest("Ada", "not-an-email", "")
		assert.ErrorIs(t, err, booking.ErrInvalidEmail)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		_, err := booking.NewGuest("Ada", "a@example.com", "Mars/Olympus_Mons")
		assert.ErrorIs(t, err, booking.ErrInvalidTimezone)
	})

	t.Run("empty timezone is allowed", func(t *testing.T) {
		_, err := booking.NewGuest("Ada", "a@example.com", "")
		assert.NoError(t, err)
	})
}

func TestGuest_Matches(t *testing.T) {
	g, err := booking.NewGuest("Ada", "ada@example.com", "")
	require.NoError(t, err)

	assert.True(t, g.Matches("ada@example.com"))
	assert.True(t, g.Matches("ADA@EXAMPLE.COM"))
	assert.True(t, g.Matches("  ada@example.com  "))
	assert.False(t, g.Matches("eve@example.com"))
}

func TestNewReference(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	seen := make(map[string]bool)
	for range 100 {
		ref := booking.NewReference()
		require.Len(t, ref, 10)
		for _, c := range ref {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q in %s", c, ref)
		}
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestNewAnswers(t *testing.T) {
	a := booking.NewAnswers(
		[]string{"guest2@example.com"},
		[]booking.QuestionAnswer{{Question: "Agenda?", Answer: "Quarterly review"}},
	)
	assert.Equal(t, 1, a.SchemaVersion)
	assert.Len(t, a.AdditionalGuests, 1)
	assert.Len(t, a.Questions, 1)
}
