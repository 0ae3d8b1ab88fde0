package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rinomina/internal/adapters/backup"
	"rinomina/internal/adapters/filesystem"
	mcpadapter "rinomina/internal/adapters/mcp"
	"rinomina/internal/adapters/sqlite"
	"rinomina/internal/config"
	"rinomina/internal/ports"
)

func main() {
	rootFlag := flag.String("backup-root", config.BackupRoot(), "folder holding the backup record and run journal")
	flag.Parse()

	backups := backup.NewStore(*rootFlag)

	var journal ports.RunJournal
	j := sqlite.NewJournal()
	if err := j.Open(config.JournalPath(*rootFlag)); err != nil {
		log.Printf("run journal unavailable: %v", err)
	} else {
		journal = j
		defer j.Close()
	}

	mcpServer := server.NewMCPServer(
		"rinomina-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, mcpadapter.Deps{
		Scanner:  filesystem.NewScanner(),
		Executor: filesystem.NewExecutor(),
		Backups:  backups,
		Journal:  journal,
	})

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("rinomina-mcp: %v", err)
	}
}
