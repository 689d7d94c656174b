package notifications

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
)

func TestParseChannel(t *testing.T) {
	for _, ok := range []string{"print", "email", "qr", "none"} {
		_, valid := ParseChannel(ok)
		assert.True(t, valid, ok)
	}
	_, valid := ParseChannel("fax")
	assert.False(t, valid)
}

func TestDispatchEmailPostsToWebhook(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	order := domain.Order{
		ID:          uuid.New(),
		TotalAmount: decimal.RequireFromString("41.36895"),
		Items:       []domain.OrderItem{{ProductID: "1", Quantity: 1}},
	}

	d := NewDispatcher(server.URL, "LSL")
	d.Dispatch(ChannelEmail, order)

	require.NotNil(t, got, "webhook must have been called")
	assert.Equal(t, "receipt.requested", got["event"])
	assert.Equal(t, "email", got["channel"])

	data := got["data"].(map[string]any)
	assert.Equal(t, "41.37", data["total_amount"], "receipt amounts are rounded at presentation")
	assert.Equal(t, "LSL", data["currency"])
}

func TestDispatchNoneAndPrintNeedNoWebhook(t *testing.T) {
	d := NewDispatcher("", "LSL")
	order := domain.Order{ID: uuid.New(), TotalAmount: decimal.RequireFromString("9.99")}

	// Neither channel should attempt network I/O; just make sure they
	// return without blowing up when no webhook is configured.
	d.Dispatch(ChannelNone, order)
	d.Dispatch(ChannelPrint, order)
	d.Dispatch(ChannelQR, order) // warns and drops
}
