package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/progression"
	"github.com/jsphweid/modeviz/visualizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler, method string, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestGetState(t *testing.T) {
	svc := newTestService()
	_, err := svc.SetKey(context.Background(), "F#2")
	require.NoError(t, err)

	w := serve(t, NewRouter(svc, nil), http.MethodGet, "/state", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, model.State{
		RootNote:  "F#2",
		Mode:      "Ionian (major)",
		UpdatedAt: "2024-05-01T12:05:00.000Z",
	}, decode[model.State](t, w))
}

func TestNotFound(t *testing.T) {
	router := NewRouter(newTestService(), nil)
	for _, tt := range []struct{ method, target string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/nope"},
		{http.MethodPost, "/state"},
		{http.MethodDelete, "/modes"},
	} {
		w := serve(t, router, tt.method, tt.target, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, tt.method+" "+tt.target)
		assert.Equal(t, model.ErrorResponse{Error: "Not found"}, decode[model.ErrorResponse](t, w))
	}
}

func TestOptions(t *testing.T) {
	router := NewRouter(newTestService(), nil)

	w := serve(t, router, http.MethodOptions, "/state", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(t, router, http.MethodOptions, "/state", http.Header{
		"Origin":                        {"http://localhost:3000"},
		"Access-Control-Request-Method": {"GET"},
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSOnGet(t *testing.T) {
	w := serve(t, NewRouter(newTestService(), nil), http.MethodGet, "/state", http.Header{
		"Origin": {"http://localhost:3000"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetModes(t *testing.T) {
	w := serve(t, NewRouter(newTestService(), nil), http.MethodGet, "/modes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	modes := decode[[]model.ModeResponse](t, w)
	require.Len(t, modes, 10)
	assert.Equal(t, "Ionian (major)", modes[0].Name)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11, 12}, modes[0].Intervals)
	assert.Equal(t, "Whole Tone", modes[9].Name)
}

func TestGetView(t *testing.T) {
	assert := assert.New(t)
	router := NewRouter(newTestService(), nil)

	q := url.Values{}
	q.Set("root", "C3")
	q.Set("mode", "ionian")
	q.Set("ext", "5=7")
	q.Set("slash", "5=1")
	w := serve(t, router, http.MethodGet, "/view?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	v := decode[visualizer.View](t, w)
	assert.Equal("C3", v.Root)
	assert.Equal("Ionian (major)", v.Mode)
	require.Len(t, v.Degrees, 7)
	assert.Equal("G7/C", v.Degrees[4].Symbol)
	assert.Equal("Dm", v.Degrees[1].Symbol)

	w = serve(t, router, http.MethodGet, "/view?root=C3&mode=ionian&type=sevenths", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal("Cmaj7", decode[visualizer.View](t, w).Degrees[0].Symbol)
}

func TestGetViewUsesState(t *testing.T) {
	svc := newTestService()
	_, err := svc.SetKey(context.Background(), "A2")
	require.NoError(t, err)
	_, err = svc.SetMode(context.Background(), "aeolian")
	require.NoError(t, err)

	w := serve(t, NewRouter(svc, nil), http.MethodGet, "/view", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	v := decode[visualizer.View](t, w)
	assert.Equal(t, "A2", v.Root)
	assert.Equal(t, "Aeolian (natural minor)", v.Mode)
	assert.Equal(t, "Am", v.Degrees[0].Symbol)
}

func TestGetViewRejects(t *testing.T) {
	router := NewRouter(newTestService(), nil)
	for _, target := range []string{
		"/view?root=H3",
		"/view?mode=Blues",
		"/view?type=ninths",
		"/view?ext=" + url.QueryEscape("2=m11"),
		"/view?ext=" + url.QueryEscape("9=7"),
		"/view?slash=" + url.QueryEscape("1=8"),
	} {
		w := serve(t, router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.NotEmpty(t, decode[model.ErrorResponse](t, w).Error, target)
	}
}

func TestGetProgression(t *testing.T) {
	router := NewRouter(newTestService(), nil)

	w := serve(t, router, http.MethodGet, "/progression", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	chords := decode[[]progression.Chord](t, w)
	require.Len(t, chords, 4)
	assert.Equal(t, "I", chords[0].Numeral)
	assert.Equal(t, []uint8{48, 52, 55}, chords[0].Keys)

	w = serve(t, router, http.MethodGet, "/progression?entries="+url.QueryEscape("5:7/1"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "G7/C", decode[[]progression.Chord](t, w)[0].Symbol)

	w = serve(t, router, http.MethodGet, "/progression?entries=9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
