package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoneyGroupsDigits(t *testing.T) {
	m := NewMoney("₦", "en")
	require.Equal(t, "₦0", m.Format(0))
	require.Equal(t, "₦500", m.Format(500))
	require.Equal(t, "₦2,500", m.Format(2500))
	require.Equal(t, "₦1,234,567", m.Format(1234567))
	require.Equal(t, "-₦1,000", m.Format(-1000))
}

func TestMoneyInvalidLocaleFallsBackToEnglish(t *testing.T) {
	require.Equal(t, "$12,000", Price(12000, "$", "not a locale!"))
	require.Equal(t, "$12,000", Price(12000, "$", ""))
}

func TestZeroValueMoneyStillFormats(t *testing.T) {
	var m Money
	require.Equal(t, "1,000", m.Format(1000))
}
