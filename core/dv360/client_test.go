package dv360

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	displayvideo "google.golang.org/api/displayvideo/v3"
	"google.golang.org/api/option"
)

type recorded struct {
	method string
	path   string
	query  map[string]string
	body   []byte
	ctype  string
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		calls = append(calls, recorded{r.Method, r.URL.Path, q, body, r.Header.Get("Content-Type")})
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), srv.Client(), Config{Endpoint: srv.URL + "/", TimeoutSeconds: 5}, zap.NewNop(), nil)
	require.NoError(t, err)
	return c, &calls
}

func TestClient_GetCreative(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"advertiserId":"1","creativeId":"42","displayName":"Live","dimensions":{"widthPixels":1200,"heightPixels":627},"assets":[{"asset":{"mediaId":"9"},"role":"ASSET_ROLE_MAIN"},{"asset":{"content":"Hi"},"role":"ASSET_ROLE_HEADLINE"}]}`))
	})

	cr, err := c.GetCreative(context.Background(), "1", "42")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, "/v3/advertisers/1/creatives/42", (*calls)[0].path)
	assert.Equal(t, "1", cr.AdvertiserID)
	assert.Equal(t, "42", cr.CreativeID)
	assert.Equal(t, "Live", cr.DisplayName)
	assert.Equal(t, &Dimensions{WidthPixels: 1200, HeightPixels: 627}, cr.Dimensions)
	assert.Equal(t, "9", cr.Assets[0].Asset.MediaID)
	assert.Equal(t, RoleHeadline, cr.Assets[1].Role)
	assert.Equal(t, "", cr.Assets[1].Asset.MediaID)
}

func TestClient_UpstreamError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid creative","status":"INVALID_ARGUMENT"}}`))
	})

	_, err := c.GetCreative(context.Background(), "1", "42")
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusBadRequest, upstream.Status)
	assert.Equal(t, "Invalid creative", upstream.Message)
	assert.Equal(t, "get_creative", upstream.Op)
}

func TestClient_RejectsNonNumericIDs(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	_, err := c.GetCreative(ctx, "1", "abc")
	assert.ErrorContains(t, err, `invalid creative id "abc"`)

	_, err = c.UpdateLineItem(ctx, &LineItem{AdvertiserID: "1", LineItemID: "9", CreativeIDs: []string{"x"}})
	assert.Error(t, err)

	_, err = c.CreateCreative(ctx, "", &Creative{})
	assert.Error(t, err)

	assert.Empty(t, *calls)
}

func TestClient_CreateCreative(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"creativeId":"777","advertiserId":"1"}`))
	})

	out, err := c.CreateCreative(context.Background(), "1", &Creative{
		DisplayName:  "New",
		CreativeType: CreativeTypeNative,
		Dimensions:   &Dimensions{WidthPixels: 300, HeightPixels: 250},
		Assets:       []AssetAssociation{{Asset: Asset{MediaID: "9"}, Role: RoleMain}},
		ExitEvents:   []ExitEvent{{Type: ExitEventTypeDefault, URL: "https://example.com"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "777", out.CreativeID)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/v3/advertisers/1/creatives", call.path)
	assert.Equal(t, "application/json", call.ctype)

	var sent displayvideo.Creative
	require.NoError(t, json.Unmarshal(call.body, &sent))
	assert.Equal(t, "New", sent.DisplayName)
	assert.Equal(t, int64(9), sent.Assets[0].Asset.MediaId)
	assert.Equal(t, int64(300), sent.Dimensions.WidthPixels)
	assert.Equal(t, "https://example.com", sent.ExitEvents[0].Url)
	assert.NotContains(t, string(call.body), "creativeId")
}

func TestClient_CreateCreativeWithoutID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.CreateCreative(context.Background(), "1", &Creative{})
	var upstream *UpstreamError
	assert.True(t, errors.As(err, &upstream))
}

func TestClient_UpdateCreativeStripsSimgad(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	cr := &Creative{
		AdvertiserID: "1",
		CreativeID:   "42",
		DisplayName:  "Renamed",
		Assets: []AssetAssociation{
			{Asset: Asset{MediaID: "31", Content: "/simgad/123"}, Role: RoleMain},
			{Asset: Asset{Content: "Headline"}, Role: RoleHeadline},
		},
	}
	_, err := c.UpdateCreative(context.Background(), cr, []string{FieldDisplayName, FieldAssets})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPatch, call.method)
	assert.Equal(t, "/v3/advertisers/1/creatives/42", call.path)
	assert.Equal(t, "displayName,assets", call.query["updateMask"])

	var sent displayvideo.Creative
	require.NoError(t, json.Unmarshal(call.body, &sent))
	assert.Equal(t, "", sent.Assets[0].Asset.Content)
	assert.Equal(t, int64(31), sent.Assets[0].Asset.MediaId)
	assert.Equal(t, "Headline", sent.Assets[1].Asset.Content)
	assert.NotContains(t, string(call.body), "simgad")

	assert.Equal(t, "/simgad/123", cr.Assets[0].Asset.Content, "caller's creative is untouched")
}

func TestClient_UpdateCreativeRejectsEmptyMask(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.UpdateCreative(context.Background(), &Creative{AdvertiserID: "1", CreativeID: "1"}, nil)
	assert.Error(t, err)
	assert.Empty(t, *calls)
}

func TestClient_StatusTransitions(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	require.NoError(t, c.PauseCreative(ctx, "1", "42"))
	require.NoError(t, c.ArchiveCreative(ctx, "1", "42"))
	require.NoError(t, c.DeleteCreative(ctx, "1", "42"))

	require.Len(t, *calls, 3)
	for i, want := range []EntityStatus{StatusPaused, StatusArchived} {
		var sent displayvideo.Creative
		require.NoError(t, json.Unmarshal((*calls)[i].body, &sent))
		assert.Equal(t, string(want), sent.EntityStatus)
		assert.Equal(t, http.MethodPatch, (*calls)[i].method)
		assert.Equal(t, "/v3/advertisers/1/creatives/42", (*calls)[i].path)
		assert.Equal(t, "entityStatus", (*calls)[i].query["updateMask"])
	}
	assert.Equal(t, http.MethodDelete, (*calls)[2].method)
	assert.Equal(t, "/v3/advertisers/1/creatives/42", (*calls)[2].path)
}

func TestClient_GetLineItem(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"advertiserId":"1","lineItemId":"9","displayName":"Garden","creativeIds":["42","43"]}`))
	})

	li, err := c.GetLineItem(context.Background(), "1", "9")
	require.NoError(t, err)

	assert.Equal(t, "/v3/advertisers/1/lineItems/9", (*calls)[0].path)
	assert.Equal(t, "9", li.LineItemID)
	assert.Equal(t, []string{"42", "43"}, li.CreativeIDs)
}

func TestClient_GetLineItemErrorBodyIsNotEmbedded(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Line item not found"}}`))
	})

	_, err := c.GetLineItem(context.Background(), "1", "9")

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.Status)
	assert.Equal(t, "get_line_item", upstream.Op)
}

func TestClient_UpdateLineItemEmbeddedError(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Line item is archived"}}`))
	})

	_, err := c.UpdateLineItem(context.Background(), &LineItem{AdvertiserID: "1", LineItemID: "9", CreativeIDs: []string{"42"}})
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusOK, upstream.Status)
	assert.Equal(t, "Line item is archived", upstream.Message)
	assert.Equal(t, "update_line_item", upstream.Op)
	assert.Equal(t, http.MethodPatch, (*calls)[0].method)
	assert.Equal(t, "creativeIds", (*calls)[0].query["updateMask"])
	assert.Equal(t, "/v3/advertisers/1/lineItems/9", (*calls)[0].path)
}

func TestClient_UpdateLineItemSendsIDs(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"lineItemId":"9","creativeIds":["42","42"]}`))
	})

	out, err := c.UpdateLineItem(context.Background(), &LineItem{AdvertiserID: "1", LineItemID: "9", CreativeIDs: []string{"42", "42"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"42", "42"}, out.CreativeIDs)
	assert.JSONEq(t, `{"creativeIds":["42","42"]}`, string((*calls)[0].body))
}

func TestClient_UpdateLineItemSendsEmptyList(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"lineItemId":"9"}`))
	})

	out, err := c.UpdateLineItem(context.Background(), &LineItem{AdvertiserID: "1", LineItemID: "9"})
	require.NoError(t, err)

	assert.Equal(t, "9", out.LineItemID)
	assert.Empty(t, out.CreativeIDs)
	assert.JSONEq(t, `{"creativeIds":[]}`, string((*calls)[0].body))
}

func TestClient_UploadAsset(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"asset":{"mediaId":"9"}}`))
	})

	id, err := c.UploadAsset(context.Background(), "1", "banner.jpg", []byte("JPEGDATA"))
	require.NoError(t, err)
	assert.Equal(t, "9", id)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/upload/v3/advertisers/1/assets", call.path)
	assert.Equal(t, "multipart", call.query["uploadType"])

	mediaType, params, err := mime.ParseMediaType(call.ctype)
	require.NoError(t, err)
	assert.Equal(t, "multipart/related", mediaType)

	parts := multipart.NewReader(bytes.NewReader(call.body), params["boundary"])

	meta, err := parts.NextPart()
	require.NoError(t, err)
	var req displayvideo.CreateAssetRequest
	require.NoError(t, json.NewDecoder(meta).Decode(&req))
	assert.Equal(t, "banner.jpg", req.Filename)

	media, err := parts.NextPart()
	require.NoError(t, err)
	data, _ := io.ReadAll(media)
	assert.Equal(t, []byte("JPEGDATA"), data)
}

func TestClient_UploadAssetWithoutMediaID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"asset":{}}`))
	})

	_, err := c.UploadAsset(context.Background(), "1", "banner.jpg", []byte("x"))
	var upstream *UpstreamError
	assert.True(t, errors.As(err, &upstream))
}

func TestClient_ListNativeCreativesPaginates(t *testing.T) {
	page := 0
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page++
		if page == 1 {
			_, _ = w.Write([]byte(`{"creatives":[{"creativeId":"1"}],"nextPageToken":"p2"}`))
			return
		}
		_, _ = w.Write([]byte(`{"creatives":[{"creativeId":"2"}]}`))
	})

	list, err := c.ListNativeCreatives(context.Background(), "1")
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "2", list[1].CreativeID)
	assert.Equal(t, "/v3/advertisers/1/creatives", (*calls)[0].path)
	assert.Equal(t, "creativeType=CREATIVE_TYPE_NATIVE", (*calls)[0].query["filter"])
	assert.Equal(t, "p2", (*calls)[1].query["pageToken"])
}

func TestClient_TransportFailureIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL + "/"
	srv.Close()

	c, err := NewClient(context.Background(), http.DefaultClient, Config{}, zap.NewNop(), nil, option.WithEndpoint(endpoint))
	require.NoError(t, err)

	_, err = c.GetCreative(context.Background(), "1", "42")
	require.Error(t, err)
	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
	assert.ErrorContains(t, err, "dv360 get_creative")
}
