package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codescout/codescout/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the CodeScout MCP server",
	Long:  `Launch an MCP server that allows AI agents to query contests, ratings and the practice sheet via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Session notices and other chatter must stay off stdout here
		// since stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, newContestFeed(), newStatProviders(), storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
