package timezone_test

import (
	"testing"
	"time"

	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPin(t *testing.T) {
	require.NoError(t, timezone.Pin("Asia/Manila"))
	assert.Equal(t, "Asia/Manila", timezone.GetLocation().String())

	assert.Error(t, timezone.Pin("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Manila", timezone.GetLocation().String())
}

func TestParseAndFormat(t *testing.T) {
	require.NoError(t, timezone.Pin("Asia/Manila"))

	parsed, err := timezone.Parse(time.DateOnly, "2025-06-01")

	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2025-06-01", timezone.Format(parsed, time.DateOnly))

	_, err = timezone.Parse(time.DateOnly, "06/01/2025")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	require.NoError(t, timezone.Pin("Asia/Manila"))

	// 17:30 UTC is already the next day in Manila (UTC+8).
	moment := time.Date(2025, 6, 1, 17, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, timezone.GetLocation()), timezone.DateOf(moment))
	assert.Equal(t, timezone.DateOf(timezone.Now()), timezone.Today())
}
