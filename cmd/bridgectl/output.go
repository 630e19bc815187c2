package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"ha-ai-bridge/pkg/bridgeclient"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCommandResult(w io.Writer, res *bridgeclient.CommandResult) error {
	if res.Reply != "" {
		fmt.Fprintln(w, res.Reply)
	}
	if len(res.Outcomes) == 0 {
		_, err := fmt.Fprintln(w, "no actions")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range res.Outcomes {
		status := "ok"
		if !o.Success {
			status = "FAILED: " + o.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Action, o.EntityID, status)
	}
	return tw.Flush()
}

func printDevices(w io.Writer, ids []string, devices map[string]bridgeclient.Device) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, id := range ids {
		d := devices[id]
		name, _ := d.Attributes["friendly_name"].(string)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, d.State, name)
	}
	return tw.Flush()
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
