// Package mcpserver exposes the FAQ assistant to MCP clients.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/honekiti/portfolio/internal/profile"
	"github.com/honekiti/portfolio/internal/responder"
)

// ProfileURI is the resource holding the profile as JSON.
const ProfileURI = "profile://me"

// Answerer is the responder as the MCP tools see it.
type Answerer interface {
	Respond(question string) string
}

// New creates an MCP server with the ask_profile tool and profile resource.
func New(a Answerer, p *profile.Profile) *server.MCPServer {
	s := server.NewMCPServer(
		"portfolio",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Answers questions about Amon Kikuchi: specialization, research, projects, experience, skills, achievements and contact details."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask_profile",
			mcp.WithDescription("Ask the portfolio FAQ assistant a question. Japanese and English keywords are understood."),
			mcp.WithString("question", mcp.Description("The question to answer"), mcp.Required()),
		),
		askProfile(a),
	)

	s.AddResource(
		mcp.NewResource(ProfileURI, "Profile",
			mcp.WithResourceDescription("The site owner's profile as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		profileResource(p),
	)
	return s
}

func askProfile(a Answerer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := req.RequireString("question")
		if err != nil {
			return mcp.NewToolResultError("question is required"), nil
		}
		return mcp.NewToolResultText(a.Respond(question)), nil
	}
}

func profileResource(p *profile.Profile) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encoding profile: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ProfileURI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

var _ Answerer = (*responder.Responder)(nil)
