package payments

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	g, err := NewMercadoPagoGateway("", nil)
	require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	assert.Nil(t, g)
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})

	t.Run("invalid payload never reaches the provider", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-token", nil)
		require.NoError(t, err)

		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":"abc"`))
		require.Error(t, err)
		assert.Empty(t, id)
		assert.Empty(t, status)
		assert.Nil(t, raw)
	})
}
