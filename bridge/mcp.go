package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/modeviz/constants"
	"github.com/jsphweid/modeviz/mode"
	"github.com/jsphweid/modeviz/model"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	ServerName       = "music-theory-mcp"
	StateResourceURI = "state://current"
)

// Tools exposes the service to an assistant over MCP.
type Tools struct {
	svc    *Service
	logger *zap.Logger
}

func NewTools(svc *Service, logger *zap.Logger) *Tools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{svc: svc, logger: logger}
}

// NewMCPServer registers get_state, set_key, set_mode and the current state
// resource.
func NewMCPServer(svc *Service, logger *zap.Logger) *server.MCPServer {
	t := NewTools(svc, logger)

	s := server.NewMCPServer(ServerName, constants.AppVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.AddTool(mcp.NewTool("get_state",
		mcp.WithDescription("Get the current root key and mode shown by the visualizer."),
	), t.GetState)

	s.AddTool(mcp.NewTool("set_key",
		mcp.WithDescription("Set the root key, e.g. C3, G#2 or Bb4. The octave defaults when omitted."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Root note such as C, F#3 or Bb4"),
		),
	), t.SetKey)

	s.AddTool(mcp.NewTool("set_mode",
		mcp.WithDescription("Set the mode, e.g. Dorian or Harmonic Minor. Allowed: "+strings.Join(mode.Names(), ", ")),
		mcp.WithString("mode",
			mcp.Required(),
			mcp.Description("Mode name"),
		),
	), t.SetMode)

	s.AddResource(mcp.NewResource(StateResourceURI, "current-state",
		mcp.WithResourceDescription("The root key and mode currently shown by the visualizer"),
		mcp.WithMIMEType("application/json"),
	), t.ReadState)

	return s
}

// ServeStdio blocks serving s on stdin/stdout.
func ServeStdio(s *server.MCPServer, logger *zap.Logger) error {
	return server.ServeStdio(s, server.WithErrorLogger(zap.NewStdLog(logger)))
}

func stateText(st model.State) (string, error) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (t *Tools) GetState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := t.svc.GetState(ctx)
	if err != nil {
		return nil, err
	}
	text, err := stateText(st)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

func (t *Tools) SetKey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st, err := t.svc.SetKey(ctx, key)
	if err != nil {
		return t.toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Root key set to %s", st.RootNote)), nil
}

func (t *Tools) SetMode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st, err := t.svc.SetMode(ctx, name)
	if err != nil {
		return t.toolError(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Mode set to %s", st.Mode)), nil
}

// toolError reports bad input to the assistant and fails the call on
// anything else.
func (t *Tools) toolError(err error) (*mcp.CallToolResult, error) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		t.logger.Debug("rejected tool input", zap.Error(err))
		return mcp.NewToolResultError(inputErr.Message), nil
	}
	t.logger.Error("tool call failed", zap.Error(err))
	return nil, err
}

func (t *Tools) ReadState(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	st, err := t.svc.GetState(ctx)
	if err != nil {
		return nil, err
	}
	text, err := stateText(st)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      StateResourceURI,
			MIMEType: "application/json",
			Text:     text,
		},
	}, nil
}
