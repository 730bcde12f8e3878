// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"tailscale.com/util/set"
)

// Meta describes an option for help output.
type Meta struct {
	// Usage lines. Defaults to the option key.
	Usage []string
	// Help is a short one-line description.
	Help string
	// Description is a detailed description.
	Description string
	// Group the option belongs to. Help output groups options by it.
	Group string
	// AliasOf is the key of the option this one is an alias of. The meta of
	// an alias is merged into the meta of the aliased option.
	AliasOf string
	// Hidden options are not reported by SupportedOptions.
	Hidden bool
}

// CombinedMeta is the meta of an option merged from all of its bindings and
// aliases.
type CombinedMeta struct {
	Usage       []string `json:"usage" yaml:"usage"`
	Help        string   `json:"help,omitempty" yaml:"help,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Group       string   `json:"group,omitempty" yaml:"group,omitempty"`
}

type combinedEntry struct {
	meta  CombinedMeta
	usage set.Set[string]
}

func (e *combinedEntry) addUsage(usage ...string) {
	for _, u := range usage {
		if e.usage.Contains(u) {
			continue
		}
		e.usage.Add(u)
		e.meta.Usage = append(e.meta.Usage, u)
	}
}

func (e *combinedEntry) fill(m Meta) {
	if e.meta.Help == "" {
		e.meta.Help = m.Help
	}
	if e.meta.Description == "" {
		e.meta.Description = m.Description
	}
	if e.meta.Group == "" {
		e.meta.Group = m.Group
	}
}

// metaIndex is the combined meta of all options of one parse, keyed by
// canonical option key in registration order.
type metaIndex = orderedmap.OrderedMap[string, *combinedEntry]

// combineMeta merges the meta of bindings. Bindings without meta contribute
// their key as usage.
func combineMeta[T any](bindings []Binding[T]) *metaIndex {
	index := orderedmap.New[string, *combinedEntry]()

	for _, b := range bindings {
		var m Meta
		if b.Meta != nil {
			m = *b.Meta
		}
		if m.Hidden {
			continue
		}

		key := b.Key
		if m.AliasOf != "" {
			key = m.AliasOf
		}

		entry, ok := index.Get(key)
		if !ok {
			entry = &combinedEntry{usage: make(set.Set[string])}
			index.Set(key, entry)
		}
		if len(m.Usage) > 0 {
			entry.addUsage(m.Usage...)
		} else {
			entry.addUsage(b.Key)
		}
		entry.fill(m)
	}

	return index
}

// supported returns the keys of all non-hidden options.
func supported(index *metaIndex) []string {
	keys := make([]string, 0, index.Len())
	for pair := index.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// lookupMeta returns the combined meta of key. Unknown keys have empty usage.
func lookupMeta(index *metaIndex, key string) CombinedMeta {
	entry, ok := index.Get(key)
	if !ok {
		return CombinedMeta{Usage: []string{}}
	}
	meta := entry.meta
	meta.Usage = slices.Clone(meta.Usage)
	return meta
}
