package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rinomina/internal/application/commands"
	"rinomina/internal/domain"
	"rinomina/internal/ports"
)

// Deps bundles the collaborators the rename tools operate through
type Deps struct {
	Scanner  ports.FolderScanner
	Executor ports.PlanExecutor
	Backups  ports.BackupStore
	Journal  ports.RunJournal
}

// RegisterTools adds the rename tools to the MCP server.
func RegisterTools(s *server.MCPServer, deps Deps) {
	s.AddTool(previewTool(), previewHandler(deps))
	s.AddTool(applyTool(), applyHandler(deps))
	s.AddTool(reverseTool(), reverseHandler(deps))
	s.AddTool(historyTool(), historyHandler(deps))
}

// namingOptions declares the shared naming parameters on a tool
func namingOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("folder",
			mcp.Description("Folder whose files are renamed"),
			mcp.Required(),
		),
		mcp.WithString("order",
			mcp.Description("Ordering criterion: by-name, by-mtime, by-ctime or by-embedded-number"),
			mcp.Required(),
		),
		mcp.WithString("prefix",
			mcp.Description("Text prepended to each new name (default empty)"),
		),
		mcp.WithString("separator",
			mcp.Description("Component separator: _, - or . (default _)"),
		),
		mcp.WithString("start",
			mcp.Description("First numbering index, integer > 0 (default 1)"),
		),
		mcp.WithString("padding",
			mcp.Description("Zero-padding width for the index (default 0)"),
		),
		mcp.WithString("case",
			mcp.Description("Case transform: lower, upper or title (default lower)"),
		),
		mcp.WithString("keep",
			mcp.Description("true to keep the original stem in the new name (default false)"),
		),
		mcp.WithString("no_number",
			mcp.Description("true to suppress numbering; requires keep (default false)"),
		),
	}
}

// parseConfig builds the naming config from the request parameters
func parseConfig(req mcp.CallToolRequest) (domain.NamingConfig, error) {
	var cfg domain.NamingConfig

	order, err := domain.ParseOrderCriterion(req.GetString("order", ""))
	if err != nil {
		return cfg, err
	}

	caseTransform, err := domain.ParseCaseTransform(req.GetString("case", "lower"))
	if err != nil {
		return cfg, err
	}

	start, err := parseIntParam(req, "start", 1)
	if err != nil {
		return cfg, err
	}
	padding, err := parseIntParam(req, "padding", 0)
	if err != nil {
		return cfg, err
	}
	keep, err := parseBoolParam(req, "keep")
	if err != nil {
		return cfg, err
	}
	noNumber, err := parseBoolParam(req, "no_number")
	if err != nil {
		return cfg, err
	}

	return domain.NamingConfig{
		Order:     order,
		Prefix:    req.GetString("prefix", ""),
		Separator: req.GetString("separator", "_"),
		Start:     start,
		Padding:   padding,
		Case:      caseTransform,
		KeepStem:  keep,
		NoNumber:  noNumber,
	}, nil
}

func parseIntParam(req mcp.CallToolRequest, name string, fallback int) (int, error) {
	raw := req.GetString(name, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

func parseBoolParam(req mcp.CallToolRequest, name string) (bool, error) {
	raw := req.GetString(name, "")
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false, got %q", name, raw)
	}
	return b, nil
}

// --- preview_rename ---

func previewTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Compute and show the rename plan for a folder without touching the filesystem."),
	}, namingOptions()...)
	return mcp.NewTool("preview_rename", opts...)
}

func previewHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg, err := parseConfig(req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewDryRunCommand(deps.Scanner, req.GetString("folder", ""), cfg)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if res.Plan.Len() == 0 {
			return mcp.NewToolResultText("No files to rename."), nil
		}
		return mcp.NewToolResultText(res.Listing()), nil
	}
}

// --- apply_rename ---

func applyTool() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Rename the files in a folder and record a backup so the run can be reversed."),
	}, namingOptions()...)
	return mcp.NewTool("apply_rename", opts...)
}

func applyHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg, err := parseConfig(req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewRenameCommand(deps.Scanner, deps.Executor, deps.Backups, deps.Journal, req.GetString("folder", ""), cfg)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s\nBackup record: %s", res.Message, res.BackupPath)), nil
	}
}

// --- reverse_rename ---

func reverseTool() mcp.Tool {
	return mcp.NewTool("reverse_rename",
		mcp.WithDescription("Restore the file names recorded by the last rename run."),
	)
}

func reverseHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewReverseCommand(deps.Executor, deps.Backups, deps.Journal)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recent rename and reverse runs, newest first."),
		mcp.WithString("limit",
			mcp.Description("Maximum number of runs to return (default 20)"),
		),
	)
}

func historyHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, err := parseIntParam(req, "limit", 20)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewHistoryCommand(deps.Journal, limit)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(res.Runs) == 0 {
			return mcp.NewToolResultText("No runs recorded."), nil
		}

		var sb strings.Builder
		for _, run := range res.Runs {
			fmt.Fprintf(&sb, "%s  %-7s  %-4d  %s\n", run.RanAt.Format("2006-01-02 15:04:05"), run.Mode, run.FileCount, run.Folder)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
