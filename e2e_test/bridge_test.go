//go:build e2e
// +build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/modeviz/bridge"
	"github.com/jsphweid/modeviz/model"
	"github.com/jsphweid/modeviz/state"
	"github.com/jsphweid/modeviz/visualizer"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	stateFile string
	svc       *bridge.Service
	router    http.Handler
	tools     *bridge.Tools
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "modeviz-e2e")
	if err != nil {
		panic(err.Error())
	}

	stateFile = filepath.Join(dir, "mcp-state.json")
	svc = bridge.NewService(state.NewFileStore(stateFile, 3), 3, nil)
	router = bridge.NewRouter(svc, nil)
	tools = bridge.NewTools(svc, nil)

	exitVal := m.Run()

	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func get(target string) (int, []byte) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

func callTool(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"get_state": tools.GetState,
		"set_key":   tools.SetKey,
		"set_mode":  tools.SetMode,
	}
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := handlers[name](context.Background(), req)
	require.NoError(t, err)
	return res
}

func TestAssistantChangesWhatTheUISees(t *testing.T) {
	assert := assert.New(t)

	status, body := get("/state")
	assert.Equal(200, status)
	var st model.State
	require.NoError(t, json.Unmarshal(body, &st))
	assert.Equal("C3", st.RootNote)
	assert.Equal("Ionian (major)", st.Mode)

	res := callTool(t, "set_key", map[string]any{"key": "eb"})
	assert.False(res.IsError)
	assert.Equal("Root key set to D#3", res.Content[0].(mcp.TextContent).Text)

	res = callTool(t, "set_mode", map[string]any{"mode": "dorian"})
	assert.False(res.IsError)

	res = callTool(t, "set_key", map[string]any{"key": "C8"})
	assert.True(res.IsError)

	status, body = get("/state")
	assert.Equal(200, status)
	require.NoError(t, json.Unmarshal(body, &st))
	assert.Equal("D#3", st.RootNote)
	assert.Equal("Dorian", st.Mode)
	assert.NotEmpty(st.UpdatedAt)

	data, err := os.ReadFile(stateFile)
	require.NoError(t, err)
	var stored model.State
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(st, stored)

	status, body = get("/view")
	assert.Equal(200, status)
	var v visualizer.View
	require.NoError(t, json.Unmarshal(body, &v))
	assert.Equal("Dorian", v.Mode)
	assert.Equal(model.QualityMinor, v.Degrees[0].Quality)
}

func TestUnknownPath(t *testing.T) {
	status, body := get("/search")
	assert.Equal(t, 404, status)
	assert.JSONEq(t, `{"error":"Not found"}`, string(body))
}
