package device

import (
	"sort"
	"strings"
	"time"
)

// Entity is the state of one platform entity.
type Entity struct {
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

// FriendlyName returns the friendly_name attribute, if any.
func (e Entity) FriendlyName() string {
	name, _ := e.Attributes["friendly_name"].(string)
	return name
}

// Snapshot is an immutable copy of all entity states. It is replaced
// wholesale on refresh and must not be modified after construction.
// The Cache hands out copies of the entity map, so a caller's edits never
// reach the cached snapshot. Attribute maps are shared and read-only.
type Snapshot struct {
	Entities  map[string]Entity
	FetchedAt time.Time
}

func (s Snapshot) clone() Snapshot {
	entities := make(map[string]Entity, len(s.Entities))
	for id, e := range s.Entities {
		entities[id] = e
	}
	return Snapshot{Entities: entities, FetchedAt: s.FetchedAt}
}

// Len returns the number of entities.
func (s Snapshot) Len() int {
	return len(s.Entities)
}

// IDs returns the entity ids in sorted order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s.Entities))
	for id := range s.Entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Domains returns the distinct entity domains in sorted order.
func (s Snapshot) Domains() []string {
	seen := make(map[string]struct{})
	for id := range s.Entities {
		seen[Domain(id)] = struct{}{}
	}
	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// Filter returns the entities of one domain.
func (s Snapshot) Filter(domain string) map[string]Entity {
	out := make(map[string]Entity)
	for id, e := range s.Entities {
		if Domain(id) == domain {
			out[id] = e
		}
	}
	return out
}

// Domain returns the part of an entity id before the first dot.
func Domain(entityID string) string {
	domain, _, _ := strings.Cut(entityID, ".")
	return domain
}
