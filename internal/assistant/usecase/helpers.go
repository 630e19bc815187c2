package usecase

import (
	"fmt"
	"strings"

	"ha-ai-bridge/internal/action"
)

// summarize builds the assistant turn recorded after a command.
func summarize(reply string, outcomes []action.Outcome) string {
	var b strings.Builder
	if reply != "" {
		b.WriteString(reply)
	}
	if len(outcomes) == 0 {
		if b.Len() == 0 {
			b.WriteString("No actions were needed.")
		}
		return b.String()
	}

	if b.Len() > 0 {
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "Executed %d action(s):", len(outcomes))
	for i, o := range outcomes {
		if i > 0 {
			b.WriteString(";")
		}
		if o.Success {
			fmt.Fprintf(&b, " %s on %s succeeded", o.Action, o.EntityID)
		} else {
			fmt.Fprintf(&b, " %s on %s failed (%s)", o.Action, o.EntityID, o.Error)
		}
	}
	return b.String()
}

func countFailed(outcomes []action.Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.Success {
			n++
		}
	}
	return n
}
