package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/calvine/marketplace-mcp/internal/adapter/static"
	"github.com/calvine/marketplace-mcp/internal/domain/offer"
	"github.com/calvine/marketplace-mcp/internal/mocks"
	catalogsvc "github.com/calvine/marketplace-mcp/internal/service/catalog"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newHandlerDeps(t *testing.T) (*catalogsvc.Service, *mocks.MockSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	live := mocks.NewMockSource(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return catalogsvc.NewService(live, static.NewDataset(), bus), live
}

func makeReq(args map[string]any) mcpmcp.CallToolRequest {
	var req mcpmcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(r *mcpmcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	b, _ := json.Marshal(r.Content[0])
	var m map[string]interface{}
	json.Unmarshal(b, &m) //nolint:errcheck
	if t, ok := m["text"].(string); ok {
		return t
	}
	return ""
}

// ── fetchOffersHandler ────────────────────────────────────────────────────────

func TestFetchOffersHandler_LiveData(t *testing.T) {
	svc, live := newHandlerDeps(t)
	live.EXPECT().Fetch(gomock.Any()).Return([]offer.Offer{
		{OfferID: "live-1", Title: "Live Deal", Brand: &offer.Brand{Name: "Acme", Featured: true}},
	}, nil)

	handler := fetchOffersHandler(svc)
	res, err := handler(context.Background(), makeReq(map[string]any{}))
	require.NoError(t, err)

	var env offer.Envelope
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &env))
	assert.Equal(t, 1, env.TotalOffers)
	assert.Equal(t, "live-1", env.Offers[0].ID)
}

func TestFetchOffersHandler_FallbackScenarios(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		wantTotal int
		wantIDs   []string
	}{
		{
			name:      "featured true returns the four featured offers",
			args:      map[string]any{"featured": true},
			wantTotal: 4,
		},
		{
			name:      "car care network returns one offer",
			args:      map[string]any{"network": []any{"SYF CAR CARE"}},
			wantTotal: 1,
			wantIDs:   []string{"smp-expressoil-005"},
		},
		{
			name:      "brand substring",
			args:      map[string]any{"brand": "best"},
			wantTotal: 1,
			wantIDs:   []string{"smp-bestbuy-003"},
		},
		{
			name:      "pagination",
			args:      map[string]any{"offset": float64(4), "limitOffersCount": float64(5)},
			wantTotal: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, live := newHandlerDeps(t)
			live.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("upstream down"))

			handler := fetchOffersHandler(svc)
			res, err := handler(context.Background(), makeReq(tt.args))
			require.NoError(t, err)

			var env offer.Envelope
			require.NoError(t, json.Unmarshal([]byte(resultText(res)), &env))
			assert.Equal(t, tt.wantTotal, env.TotalOffers)
			if tt.wantIDs != nil {
				require.Len(t, env.Offers, len(tt.wantIDs))
				for i, id := range tt.wantIDs {
					assert.Equal(t, id, env.Offers[i].ID)
				}
			}
		})
	}
}

func TestFetchOffersHandler_EmptyResultMessage(t *testing.T) {
	svc, live := newHandlerDeps(t)
	live.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("upstream down"))

	handler := fetchOffersHandler(svc)
	res, err := handler(context.Background(), makeReq(map[string]any{"industry": []any{"JEWELRY"}}))
	require.NoError(t, err)

	text := resultText(res)
	assert.Contains(t, text, "No offers matched")
	assert.Contains(t, text, "JEWELRY")
}

func TestFetchOffersHandler_InvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		args         map[string]any
		wantContains string
	}{
		{
			name:         "out-of-enum industry",
			args:         map[string]any{"industry": []any{"SPORTS"}},
			wantContains: "error: invalid industry",
		},
		{
			name:         "out-of-enum region",
			args:         map[string]any{"region": "EUROPE"},
			wantContains: "error: invalid region",
		},
		{
			name:         "featured must be boolean",
			args:         map[string]any{"featured": "yes"},
			wantContains: "error: featured must be a boolean",
		},
		{
			name:         "offset must be integer",
			args:         map[string]any{"offset": 1.5},
			wantContains: "error: offset must be an integer",
		},
		{
			name:         "negative offset",
			args:         map[string]any{"offset": float64(-2)},
			wantContains: "error: offset must be non-negative",
		},
		{
			name:         "zero limit",
			args:         map[string]any{"limitOffersCount": float64(0)},
			wantContains: "error: limitOffersCount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validation fails before any fetch happens.
			svc, _ := newHandlerDeps(t)
			handler := fetchOffersHandler(svc)

			res, err := handler(context.Background(), makeReq(tt.args))
			require.NoError(t, err, "invalid input is a text result, not a Go error")
			assert.Contains(t, resultText(res), tt.wantContains)
		})
	}
}

func TestFetchOffersHandler_PanicBecomesToolError(t *testing.T) {
	handler := fetchOffersHandler(nil) // nil service forces a panic inside the handler

	res, err := handler(context.Background(), makeReq(map[string]any{}))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "internal error")
}
