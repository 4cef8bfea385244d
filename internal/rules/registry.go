package rules

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = map[string]Rule{}
)

// Register adds a rule to the global registry. Every rule is wrapped in an
// AllowListWrapper so suppression options are available uniformly. Called
// from init() in the checks package; a duplicate ID is a programming error.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	id := r.ID()
	if _, dup := registry[id]; dup {
		panic(fmt.Sprintf("rule %s already registered", id))
	}
	registry[id] = &AllowListWrapper{Rule: r}
}

// List returns all registered rules sorted by ID.
func List() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Resolve maps a comma-separated ID selector to rules. An empty selector
// selects everything.
func Resolve(selector string) ([]Rule, error) {
	if selector == "" {
		return List(), nil
	}

	mu.RLock()
	defer mu.RUnlock()
	var selected []Rule
	for _, id := range strings.Split(selector, ",") {
		id = strings.TrimSpace(id)
		r, ok := registry[id]
		if !ok {
			return nil, fmt.Errorf("rule not found: %s", id)
		}
		selected = append(selected, r)
	}
	return selected, nil
}
