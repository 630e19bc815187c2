package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ha-ai-bridge/pkg/bridgeclient"
)

const defaultAddr = "http://localhost:8099"

var (
	// Global flags
	addr       string
	timeout    time.Duration
	sessionID  string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bridgectl",
	Short: "bridgectl - command line client for the Home Assistant AI bridge",
	Long: `bridgectl talks to a running bridge over its HTTP API.

Commands are interpreted by the bridge's AI provider and executed against
Home Assistant; every action's outcome is printed in order.`,
	SilenceUsage: true,
}

var controlCmd = &cobra.Command{
	Use:     "control <command...>",
	Short:   "Execute a natural-language command",
	Example: `  bridgectl control "turn on the living room lights and close the blinds"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runControl,
}

var chatCmd = &cobra.Command{
	Use:   "chat [message...]",
	Short: "Chat with the assistant (interactive when no message is given)",
	RunE:  runChat,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the session transcript",
	RunE:  runHistory,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <entity_id> <prompt...>",
	Short: "Analyze a camera snapshot or a local image",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAnalyze,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest an automation for a trigger and an action",
	RunE:  runSuggest,
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the devices known to the bridge",
	RunE:  runDevices,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show bridge status and feature flags",
	RunE:  runStatus,
}

var (
	imagePath      string
	suggestTrigger string
	suggestAction  string
	devicesDomain  string
)

func init() {
	envAddr := os.Getenv("BRIDGE_ADDR")
	if envAddr == "" {
		envAddr = defaultAddr
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&addr, "addr", envAddr, "Bridge address (or set BRIDGE_ADDR)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", bridgeclient.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "Conversation session id (default: bridge default session)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	analyzeCmd.Flags().StringVar(&imagePath, "image", "", "Analyze this local image instead of a camera snapshot")

	suggestCmd.Flags().StringVar(&suggestTrigger, "trigger", "", "Trigger description (required)")
	suggestCmd.Flags().StringVar(&suggestAction, "action", "", "Action description (required)")
	_ = suggestCmd.MarkFlagRequired("trigger")
	_ = suggestCmd.MarkFlagRequired("action")

	devicesCmd.Flags().StringVar(&devicesDomain, "domain", "", "Only list entities of this domain (e.g. light)")

	rootCmd.AddCommand(controlCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
