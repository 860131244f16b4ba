package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripGrouping removes every space variant French formatting may insert,
// so assertions do not depend on the exact separator rune.
func stripGrouping(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		default:
			return r
		}
	}, s)
}

func TestFormatXAF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount int64
		digits string
	}{
		{name: "small amount has no grouping", amount: 500, digits: "500XAF"},
		{name: "thousands are grouped", amount: 60000, digits: "60000XAF"},
		{name: "millions are grouped", amount: 1234567, digits: "1234567XAF"},
		{name: "zero", amount: 0, digits: "0XAF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatXAF(tt.amount)
			assert.True(t, strings.HasSuffix(got, " XAF"), "missing currency suffix: %q", got)
			assert.Equal(t, tt.digits, stripGrouping(got))
		})
	}
}

func TestFormatXAF_GroupsThousands(t *testing.T) {
	t.Parallel()

	got := FormatXAF(60000)
	// A separator must sit between the groups, whichever space variant it is.
	assert.NotEqual(t, "60000 XAF", got)
}

func TestParseXAF_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, amount := range []int64{0, 500, 7500, 50000, 1234567} {
		parsed, err := ParseXAF(FormatXAF(amount))
		require.NoError(t, err)
		assert.Equal(t, amount, parsed)
	}
}

func TestParseXAF_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseXAF("soixante mille XAF")
	require.Error(t, err)
}
