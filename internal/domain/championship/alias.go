package championship

import (
	"sort"
	"strings"
)

// AliasTable maps app-facing event slugs to the numeric ids the results
// server understands, in both directions. Lookups are pure; the table
// holds no cache or fetch state.
type AliasTable struct {
	toNative map[string]string
	toAlias  map[string]string
	order    []string
}

// EventRef pairs one slug with its native id for listing endpoints.
type EventRef struct {
	Alias    string
	NativeID string
}

// NewAliasTable builds a table from alias→native pairs, registered in
// sorted alias order so listings stay stable across restarts.
func NewAliasTable(pairs map[string]string) *AliasTable {
	table := &AliasTable{
		toNative: make(map[string]string, len(pairs)),
		toAlias:  make(map[string]string, len(pairs)),
	}
	aliases := make([]string, 0, len(pairs))
	for alias := range pairs {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		table.add(alias, pairs[alias])
	}
	return table
}

// DefaultAliasTable ships the event ids known at build time. Config may
// extend the set at startup.
func DefaultAliasTable() *AliasTable {
	table := &AliasTable{
		toNative: make(map[string]string),
		toAlias:  make(map[string]string),
	}
	table.add("gold-cup-2025", "13239")
	table.add("asia-pacific-2026", "13241")
	table.add("world-championship-2026", "13242")
	return table
}

func (t *AliasTable) add(alias, native string) {
	alias = strings.TrimSpace(alias)
	native = strings.TrimSpace(native)
	if alias == "" || native == "" {
		return
	}
	if _, exists := t.toNative[alias]; !exists {
		t.order = append(t.order, alias)
	}
	t.toNative[alias] = native
	t.toAlias[native] = alias
}

// Add registers one alias→native pair, overwriting any previous mapping
// for the same alias.
func (t *AliasTable) Add(alias, native string) {
	t.add(alias, native)
}

// Native resolves an app-facing id to the server-native id. Ids with no
// alias entry pass through unchanged, so native ids and unknown ids are
// both usable directly.
func (t *AliasTable) Native(id string) string {
	if t == nil {
		return id
	}
	if native, ok := t.toNative[id]; ok {
		return native
	}
	return id
}

// Alias reports the app-facing slug for a native id, when one exists.
func (t *AliasTable) Alias(nativeID string) (string, bool) {
	if t == nil {
		return "", false
	}
	alias, ok := t.toAlias[nativeID]
	return alias, ok
}

// Events lists the registered pairs in insertion order.
func (t *AliasTable) Events() []EventRef {
	if t == nil {
		return nil
	}
	refs := make([]EventRef, 0, len(t.order))
	for _, alias := range t.order {
		refs = append(refs, EventRef{Alias: alias, NativeID: t.toNative[alias]})
	}
	return refs
}
