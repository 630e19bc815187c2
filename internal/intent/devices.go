package intent

import (
	"fmt"
	"strings"

	"ha-ai-bridge/internal/device"
)

// renderDevices lists entities one per line, sorted, capped at maxContextEntities.
func renderDevices(snap device.Snapshot) string {
	ids := snap.IDs()

	var b strings.Builder
	b.WriteString(promptDevicesHeader)
	for i, id := range ids {
		if i == maxContextEntities {
			fmt.Fprintf(&b, "(%d more entities omitted)\n", len(ids)-maxContextEntities)
			break
		}
		e := snap.Entities[id]
		if name := e.FriendlyName(); name != "" {
			fmt.Fprintf(&b, "%s [%s] %q\n", id, e.State, name)
		} else {
			fmt.Fprintf(&b, "%s [%s]\n", id, e.State)
		}
	}
	if len(ids) == 0 {
		b.WriteString("(none)\n")
	}
	return b.String()
}
