package idx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/pkg/idx"
)

func TestNewProducesValidIDs(t *testing.T) {
	t.Parallel()

	id := idx.New()
	require.NotEqual(t, idx.Zero, id)

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestIDsAreMonotonicWithinSameMillisecond(t *testing.T) {
	t.Parallel()

	at := time.Now().UTC()
	a := idx.NewAt(at)
	b := idx.NewAt(at)
	require.Less(t, a.String(), b.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "not-a-ulid", "0000"} {
		_, err := idx.Parse(in)
		require.ErrorIs(t, err, idx.ErrInvalid)
	}
}
