package metaclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-manager-api/internal/config"
)

func testClientConfig(serverURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.PageSize = 2
	cfg.Meta.MaxRetries = 1
	cfg.Meta.AppID = "app-id"
	cfg.Meta.AppSecret = "app-secret"

	return cfg
}

func TestCall_PropagatesAccessToken(t *testing.T) {
	var gotToken string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("access_token")
		fmt.Fprint(w, `{"id":"123"}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	body, err := client.Call("me", "token-abc", nil)
	require.NoError(t, err)

	assert.Equal(t, "token-abc", gotToken)
	assert.JSONEq(t, `{"id":"123"}`, string(body))
}

func TestCall_TokenExpiredIsNotRetried(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"fbtrace_id":"Axyz"}}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	_, err := client.Call("act_1/campaigns", "token-vencido", nil)
	require.Error(t, err)

	assert.True(t, metadomain.IsTokenExpired(err))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 190, apiErr.Code)
	assert.Equal(t, "Axyz", apiErr.FBTraceID)
}

func TestCall_RetriesRateLimitUntilSuccess(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"message":"Application request limit reached","type":"OAuthException","code":4}}`)
			return
		}
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	body, err := client.Call("act_1/ads", "token-abc", nil)
	require.NoError(t, err)

	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
	assert.JSONEq(t, `{"data":[]}`, string(body))
}

func TestCall_RateLimitExhaustsRetries(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"User request limit reached","type":"OAuthException","code":17}}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	_, err := client.Call("act_1/ads", "token-abc", nil)
	require.Error(t, err)

	assert.True(t, metadomain.IsRateLimited(err))
	// MaxRetries=1 significa a chamada original mais uma repetição
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCall_ErrorPayloadWithStatusOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"message":"Please reduce the amount of data you're asking for","code":1}}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	_, err := client.Call("act_1/ads", "token-abc", nil)
	require.Error(t, err)

	assert.True(t, metadomain.IsPayloadTooLarge(err))
}

func TestCallAllPages_FollowsCursor(t *testing.T) {
	type pageRequest struct {
		after string
		limit string
	}
	var requests []pageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		after := r.URL.Query().Get("after")
		requests = append(requests, pageRequest{
			after: after,
			limit: r.URL.Query().Get("limit"),
		})

		if after == "" {
			fmt.Fprint(w, `{
				"data":[{"id":"c1"},{"id":"c2"}],
				"paging":{"cursors":{"after":"CURSOR1"},"next":"https://graph.facebook.com/next"}
			}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":"c3"}],"paging":{"cursors":{"after":""}}}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	items, err := client.CallAllPages("act_1/campaigns", "token-abc", nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Len(t, requests, 2)
	assert.Equal(t, "2", requests[0].limit)
	assert.Equal(t, "", requests[0].after)
	assert.Equal(t, "CURSOR1", requests[1].after)
}

func TestCallAllPages_SinglePageWithoutNext(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// Cursor presente mas sem "next": última página
		fmt.Fprint(w, `{"data":[{"id":"c1"}],"paging":{"cursors":{"after":"CURSOR1"}}}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	items, err := client.CallAllPages("act_1/campaigns", "token-abc", nil)
	require.NoError(t, err)

	assert.Len(t, items, 1)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestGetCampaigns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_ACC001/campaigns", r.URL.Path)
		assert.Equal(t, "id,name,status,objective", r.URL.Query().Get("fields"))

		fmt.Fprint(w, `{"data":[
			{"id":"camp1","name":"Campanha Verão","status":"ACTIVE","objective":"OUTCOME_SALES"},
			{"id":"camp2","name":"Campanha Inverno","status":"PAUSED","objective":"OUTCOME_TRAFFIC"}
		]}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	campaigns, err := client.GetCampaigns("token-abc", "ACC001")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.Equal(t, metadomain.Campaign{
		ID:        "camp1",
		Name:      "Campanha Verão",
		Status:    "ACTIVE",
		Objective: "OUTCOME_SALES",
	}, campaigns[0])
	assert.Equal(t, "PAUSED", campaigns[1].Status)
}

func TestGetDailyInsights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/act_ACC001/insights", r.URL.Path)
		assert.Equal(t, "ad", query.Get("level"))
		assert.Equal(t, "1", query.Get("time_increment"))
		assert.JSONEq(t, `{"since":"2024-05-01","until":"2024-05-03"}`, query.Get("time_range"))

		fmt.Fprint(w, `{"data":[{
			"ad_id":"ad1",
			"date_start":"2024-05-01",
			"impressions":"1000",
			"clicks":"40",
			"reach":"800",
			"spend":"25.50",
			"frequency":"1.25",
			"actions":[{"action_type":"purchase","value":"3"}],
			"action_values":[{"action_type":"purchase","value":"150.75"}]
		}]}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	rows, err := client.GetDailyInsights("token-abc", "ACC001", since, until)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "ad1", row.AdID)
	assert.Equal(t, 1000, row.ImpressionsInt())
	assert.Equal(t, 40, row.ClicksInt())
	assert.Equal(t, 800, row.ReachInt())
	assert.InDelta(t, 25.50, row.SpendFloat(), 0.001)
	assert.InDelta(t, 1.25, row.FrequencyFloat(), 0.001)
	require.Len(t, row.Actions, 1)
	assert.Equal(t, 3, row.Actions[0].Count())
}

func TestExchangeLongLivedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", query.Get("grant_type"))
		assert.Equal(t, "app-id", query.Get("client_id"))
		assert.Equal(t, "app-secret", query.Get("client_secret"))
		assert.Equal(t, "token-curto", query.Get("fb_exchange_token"))

		fmt.Fprint(w, `{"access_token":"token-longo","token_type":"bearer","expires_in":5184000}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	tokenResp, err := client.ExchangeLongLivedToken("token-curto")
	require.NoError(t, err)

	assert.Equal(t, "token-longo", tokenResp.AccessToken)

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(5184000*time.Second), tokenResp.ExpiresAt(now))
}

func TestExchangeLongLivedToken_EmptyToken(t *testing.T) {
	client := NewClient(testClientConfig("http://unused"), nil)

	_, err := client.ExchangeLongLivedToken("")
	require.Error(t, err)
}

func TestClassifyBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantNil  bool
		wantKind metadomain.ErrorKind
	}{
		{
			name:    "corpo sem payload de erro",
			body:    `{"data":[]}`,
			wantNil: true,
		},
		{
			name:    "corpo que não é JSON",
			body:    `<html>gateway timeout</html>`,
			wantNil: true,
		},
		{
			name:     "rate limit por código",
			body:     `{"error":{"message":"limit","code":80004}}`,
			wantKind: metadomain.ErrorKindRateLimited,
		},
		{
			name:     "token expirado por subcódigo",
			body:     `{"error":{"message":"session","type":"OAuthException","code":102,"error_subcode":463}}`,
			wantKind: metadomain.ErrorKindTokenExpired,
		},
		{
			name:     "payload grande por mensagem",
			body:     `{"error":{"message":"There is too much data to process","code":1}}`,
			wantKind: metadomain.ErrorKindPayloadTooLarge,
		},
		{
			name:     "erro genérico",
			body:     `{"error":{"message":"Unknown error","code":1}}`,
			wantKind: metadomain.ErrorKindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := classifyBody([]byte(tt.body))
			if tt.wantNil {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
		})
	}
}

func TestGetAds_RequestedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id,name,status,adset_id,creative{id,thumbnail_url,body}", r.URL.Query().Get("fields"))

		fmt.Fprint(w, `{"data":[{
			"id":"ad1","name":"Anúncio 1","status":"ACTIVE","adset_id":"set1",
			"creative":{"id":"cr1","thumbnail_url":"https://cdn/thumb.jpg","body":"texto"}
		}]}`)
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), server.Client())

	ads, err := client.GetAds("token-abc", "ACC001", AdFieldsFull)
	require.NoError(t, err)
	require.Len(t, ads, 1)

	require.NotNil(t, ads[0].Creative)
	assert.Equal(t, "https://cdn/thumb.jpg", ads[0].Creative.ThumbnailURL)
	assert.Equal(t, "texto", ads[0].Creative.Body)
}
