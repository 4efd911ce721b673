package get_day_availability

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParams(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		query := url.Values{"year": {"2024"}, "month": {"6"}, "day": {"10"}}

		date, err := parseDateParams(query)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("missing params", func(t *testing.T) {
		_, err := parseDateParams(url.Values{"year": {"2024"}})

		assert.Error(t, err)
	})

	t.Run("non-numeric params", func(t *testing.T) {
		query := url.Values{"year": {"2024"}, "month": {"june"}, "day": {"10"}}

		_, err := parseDateParams(query)

		assert.Error(t, err)
	})

	t.Run("month out of range", func(t *testing.T) {
		query := url.Values{"year": {"2024"}, "month": {"13"}, "day": {"10"}}

		_, err := parseDateParams(query)

		assert.Error(t, err)
	})

	t.Run("impossible calendar date", func(t *testing.T) {
		query := url.Values{"year": {"2024"}, "month": {"2"}, "day": {"31"}}

		_, err := parseDateParams(query)

		assert.Error(t, err)
	})

	t.Run("leap day is accepted", func(t *testing.T) {
		query := url.Values{"year": {"2024"}, "month": {"2"}, "day": {"29"}}

		date, err := parseDateParams(query)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), date)
	})
}
