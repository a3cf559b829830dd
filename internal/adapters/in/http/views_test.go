package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/geofence"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/request"
	"marketplace/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDelivererStats(t *testing.T) {
	me := actorOf(kernel.RoleDeliverer)
	var got queries.GetDelivererStatsQuery
	handlers := httpadapter.Handlers{
		GetDelivererStats: handlerFunc[queries.GetDelivererStatsQuery, queries.DelivererStats](
			func(_ context.Context, q queries.GetDelivererStatsQuery) (queries.DelivererStats, error) {
				got = q
				return queries.DelivererStats{
					Today:        queries.PeriodStats{Deliveries: 2, Earnings: 13.5},
					Week:         queries.PeriodStats{Deliveries: 9, Earnings: 61},
					Month:        queries.PeriodStats{Deliveries: 30, Earnings: 210},
					ActiveOrders: 1,
					Rating:       4.8,
					IsOnline:     true,
				}, nil
			}),
	}
	e := newRouter(t, handlers, nil)

	t.Run("deliverer", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/deliverers/me/stats", tokenFor(t, me), "")

		assertStatus(t, rec, http.StatusOK)
		var resp httpadapter.DelivererStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Today.Deliveries)
		assert.InDelta(t, 61, resp.Week.Earnings, 1e-9)
		assert.Equal(t, 1, resp.ActiveOrders)
		assert.Equal(t, me.ID, got.DelivererID())
		assert.False(t, got.Now().IsZero())
	})

	t.Run("store is forbidden", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/deliverers/me/stats", tokenFor(t, actorOf(kernel.RoleStore)), "")

		assertStatus(t, rec, http.StatusForbidden)
	})
}

func TestListDelivererHistory(t *testing.T) {
	me := actorOf(kernel.RoleDeliverer)
	var got queries.ListDelivererHistoryQuery
	handlers := httpadapter.Handlers{
		ListDelivererHistory: handlerFunc[queries.ListDelivererHistoryQuery, queries.DelivererHistory](
			func(_ context.Context, q queries.ListDelivererHistoryQuery) (queries.DelivererHistory, error) {
				got = q
				return queries.DelivererHistory{
					Orders: []queries.HistoryOrder{
						{ID: kernel.NewUUID(), Number: "123456", StoreID: kernel.NewUUID(), Status: order.Delivered},
					},
					Total:   41,
					Page:    q.Page(),
					PerPage: q.PerPage(),
					Pages:   3,
				}, nil
			}),
	}
	e := newRouter(t, handlers, nil)

	t.Run("defaults", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/deliverers/me/history", tokenFor(t, me), "")

		assertStatus(t, rec, http.StatusOK)
		var resp httpadapter.DelivererHistory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.CurrentPage)
		assert.Equal(t, queries.DefaultHistoryPerPage, resp.PerPage)
		assert.Equal(t, 41, resp.Total)
		require.Len(t, resp.Orders, 1)
		assert.Equal(t, "delivered", resp.Orders[0].Status)
	})

	t.Run("explicit page", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/deliverers/me/history?page=2&per_page=15", tokenFor(t, me), "")

		assertStatus(t, rec, http.StatusOK)
		assert.Equal(t, 2, got.Page())
		assert.Equal(t, 15, got.PerPage())
	})

	t.Run("malformed page", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/v1/deliverers/me/history?page=two", tokenFor(t, me), "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestListMyDeliveryRequests(t *testing.T) {
	client := actorOf(kernel.RoleClient)
	deliverer := kernel.NewUUID()
	handlers := httpadapter.Handlers{
		ListMyDeliveryRequests: handlerFunc[queries.ListMyDeliveryRequestsQuery, []queries.MyDeliveryRequest](
			func(_ context.Context, q queries.ListMyDeliveryRequestsQuery) ([]queries.MyDeliveryRequest, error) {
				return []queries.MyDeliveryRequest{{
					ID:            kernel.NewUUID(),
					ClientID:      q.Actor().ID,
					DelivererID:   &deliverer,
					Status:        request.Accepted,
					PickupAddress: "Rua A, 1",
					PaymentMethod: kernel.PaymentMethodCash,
				}}, nil
			}),
	}
	e := newRouter(t, handlers, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/delivery-requests/mine", tokenFor(t, client), "")

	assertStatus(t, rec, http.StatusOK)
	var resp []httpadapter.MyDeliveryRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, client.ID.String(), resp[0].ClientID)
	require.NotNil(t, resp[0].DelivererID)
	assert.Equal(t, deliverer.String(), *resp[0].DelivererID)
	assert.Equal(t, "accepted", resp[0].Status)

	rec = doRequest(e, http.MethodGet, "/api/v1/delivery-requests/mine", tokenFor(t, actorOf(kernel.RoleStore)), "")
	assertStatus(t, rec, http.StatusForbidden)
}

func TestTrackOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	delivererID := kernel.NewUUID()
	loc, err := kernel.NewLocation(-23.55, -46.63)
	require.NoError(t, err)
	point := queries.TrackingPoint{
		ID: kernel.NewUUID(), OrderID: orderID, DelivererID: delivererID, Location: loc,
		Stage: tracking.StageInTransit, DistanceRemainingKm: 1.2, RecordedAt: time.Now().UTC(),
	}

	var got queries.TrackOrderQuery
	handlers := httpadapter.Handlers{
		TrackOrder: handlerFunc[queries.TrackOrderQuery, queries.OrderTrackingView](
			func(_ context.Context, q queries.TrackOrderQuery) (queries.OrderTrackingView, error) {
				got = q
				return queries.OrderTrackingView{
					OrderID:           q.OrderID(),
					Status:            order.Delivering,
					DelivererID:       &delivererID,
					Latest:            &point,
					DelivererLocation: &queries.CurrentLocation{DelivererID: delivererID, Location: loc},
					History:           []queries.TrackingPoint{point},
				}, nil
			}),
	}
	e := newRouter(t, handlers, nil)
	client := actorOf(kernel.RoleClient)

	rec := doRequest(e, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/track", tokenFor(t, client), "")

	assertStatus(t, rec, http.StatusOK)
	var resp httpadapter.OrderTrackingView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "delivering", resp.Status)
	require.NotNil(t, resp.Latest)
	assert.InDelta(t, 1.2, resp.Latest.DistanceRemainingKm, 1e-9)
	require.NotNil(t, resp.DelivererLocation)
	assert.Equal(t, delivererID.String(), resp.DelivererLocation.DelivererID)
	assert.Len(t, resp.History, 1)
	assert.Equal(t, client.ID, got.Actor().ID)

	rec = doRequest(e, http.MethodGet, "/api/v1/orders/not-a-uuid/track", tokenFor(t, client), "")
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestCreateZone(t *testing.T) {
	var got commands.CreateGeofenceAreaCommand
	handlers := httpadapter.Handlers{
		CreateGeofenceArea: commandFunc[commands.CreateGeofenceAreaCommand](
			func(_ context.Context, cmd commands.CreateGeofenceAreaCommand) error {
				got = cmd
				return nil
			}),
	}
	e := newRouter(t, handlers, nil)
	admin := tokenFor(t, actorOf(kernel.RoleAdmin))
	body := `{"name":"Centro","center":{"latitude":-23.55,"longitude":-46.63},"radius_meters":2500}`

	t.Run("created with default type", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/v1/zones", admin, body)

		assertStatus(t, rec, http.StatusCreated)
		var resp httpadapter.CreateZoneResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, got.AreaID().String(), resp.ID)
		assert.Equal(t, geofence.AreaDeliveryZone, got.AreaType())
		assert.Equal(t, "Centro", got.Name())
	})

	t.Run("missing center", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/v1/zones", admin, `{"name":"Centro","radius_meters":2500}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("store is forbidden", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/v1/zones", tokenFor(t, actorOf(kernel.RoleStore)), body)

		assertStatus(t, rec, http.StatusForbidden)
	})

	t.Run("requires a token", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/v1/zones", "", body)

		assertStatus(t, rec, http.StatusUnauthorized)
	})
}
