package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount_String(t *testing.T) {
	t.Run("with commodity", func(t *testing.T) {
		amt := NewAmount(NewQuantity(12345, 2), NewCommodity("USD"))
		require.Equal(t, "123.45 USD", amt.String())
	})

	t.Run("without commodity", func(t *testing.T) {
		amt := NewAmount(NewQuantity(12345, 2), nil)
		require.Equal(t, "123.45", amt.String())
	})

	t.Run("nil amount", func(t *testing.T) {
		var amt *Amount
		require.Equal(t, "", amt.String())
	})
}
