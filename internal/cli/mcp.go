package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	passmcp "github.com/avezina/passmith/internal/mcp"
)

var (
	mcpConfig  string
	mcpProfile string
)

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpConfig, "config", "", "Path to defaults file (default: ~/.passmith/config.yaml)")
	mcpCmd.Flags().StringVar(&mcpProfile, "profile", "", "Named profile used as the base policy")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP tool server for agent integration",
	Long: "Runs passmith as an MCP (Model Context Protocol) server over stdio.\n" +
		"Exposes tools: generate, passphrase, estimate, profiles.\n\n" +
		"Seeded generation is not available over MCP; every tool call draws\n" +
		"from the operating system's secure randomness.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg := passmcp.Config{
		ConfigPath:  mcpConfig,
		ProfileName: mcpProfile,
	}

	srv, err := passmcp.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down MCP server...")
		cancel()
	}()

	fmt.Fprintln(os.Stderr, "passmith MCP server running on stdio")
	if mcpProfile != "" {
		fmt.Fprintf(os.Stderr, "Profile: %s\n", mcpProfile)
	}
	fmt.Fprintln(os.Stderr)

	return srv.Run(ctx)
}
