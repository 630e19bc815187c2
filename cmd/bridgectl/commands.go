package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ha-ai-bridge/pkg/bridgeclient"
)

func newClient() (*bridgeclient.Client, error) {
	return bridgeclient.New(bridgeclient.Config{
		Addr:      addr,
		SessionID: sessionID,
		Timeout:   timeout,
	})
}

func runControl(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	res, err := client.Control(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}
	return printCommandResult(cmd.OutOrStdout(), res)
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runInteractiveChat(cmd)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	reply, err := client.SendMessage(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), reply)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), reply.Response)
	return err
}

// runInteractiveChat reads one message per line until EOF or "exit".
// Without --session the whole run shares a fresh session.
func runInteractiveChat(cmd *cobra.Command) error {
	if sessionID == "" {
		sessionID = "cli-" + uuid.NewString()
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "session %s (type exit to quit)\n", sessionID)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		reply, err := client.SendMessage(ctx, line)
		cancel()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, reply.Response)
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	h, err := client.History(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), h)
	}
	for _, t := range h.Turns {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", t.Timestamp.Local().Format("15:04:05"), t.Role, t.Text)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	req := bridgeclient.AnalyzeRequest{
		EntityID: args[0],
		Prompt:   strings.Join(args[1:], " "),
	}
	if imagePath != "" {
		if req.Image, err = os.ReadFile(imagePath); err != nil {
			return fmt.Errorf("read image: %w", err)
		}
	}

	res, err := client.AnalyzeImage(cmd.Context(), req)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Analysis)
	return err
}

func runSuggest(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.SuggestAutomation(cmd.Context(), suggestTrigger, suggestAction)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", res.Suggestion.Name)
	if res.Suggestion.Description != "" {
		fmt.Fprintf(out, "# %s\n", res.Suggestion.Description)
	}
	_, err = io.WriteString(out, res.Suggestion.AutomationYAML)
	return err
}

func runDevices(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	res, err := client.Devices(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}

	ids := make([]string, 0, len(res.Devices))
	for id := range res.Devices {
		if devicesDomain != "" && !strings.HasPrefix(id, devicesDomain+".") {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return printDevices(cmd.OutOrStdout(), ids, res.Devices)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	st, err := client.Status(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), st)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status:            %s\n", st.Status)
	fmt.Fprintf(out, "version:           %s\n", st.Version)
	fmt.Fprintf(out, "devices:           %d\n", st.DevicesCount)
	fmt.Fprintf(out, "voice control:     %s\n", onOff(st.Features.VoiceControl))
	fmt.Fprintf(out, "automations:       %s\n", onOff(st.Features.Automations))
	fmt.Fprintf(out, "image recognition: %s\n", onOff(st.Features.ImageRecognition))
	return nil
}
