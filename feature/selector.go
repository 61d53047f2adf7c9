package feature

import (
	"strconv"
	"strings"
)

// ChannelName is a named channel alias.
type ChannelName string

// Channel aliases. Mid and side are derived from left and right.
const (
	ChannelLeft  ChannelName = "left"
	ChannelRight ChannelName = "right"
	ChannelMid   ChannelName = "mid"
	ChannelSide  ChannelName = "side"
)

// FallbackOrder is the priority used when a requested channel is absent
// or empty.
var FallbackOrder = []ChannelName{ChannelLeft, ChannelRight, ChannelMid, ChannelSide}

// SelectorKind discriminates the Selector variants.
type SelectorKind int

const (
	// SelectorDefault requests whatever channel resolves first in
	// FallbackOrder.
	SelectorDefault SelectorKind = iota

	// SelectorIndex requests a raw channel by position.
	SelectorIndex

	// SelectorAlias requests a named channel.
	SelectorAlias
)

// Selector picks a channel out of an extracted series map. The zero
// value is the default selector.
type Selector struct {
	Kind  SelectorKind
	Index int
	Alias ChannelName
}

// DefaultSelector returns the default (fallback-order) selector.
func DefaultSelector() Selector {
	return Selector{Kind: SelectorDefault}
}

// IndexSelector returns a selector for raw channel idx.
func IndexSelector(idx int) Selector {
	return Selector{Kind: SelectorIndex, Index: idx}
}

// AliasSelector returns a selector for a named channel.
func AliasSelector(name ChannelName) Selector {
	return Selector{Kind: SelectorAlias, Alias: name}
}

// ParseSelector normalizes the loose selector shapes accepted at the
// boundary: nil, an integer, a numeric string, or a case-insensitive
// alias string. Anything unrecognized resolves to the default selector.
func ParseSelector(v interface{}) Selector {
	switch val := v.(type) {
	case nil:
		return DefaultSelector()

	case int:
		return IndexSelector(val)

	case int64:
		return IndexSelector(int(val))

	case float64:
		return IndexSelector(int(val))

	case string:
		return ParseSelectorString(val)
	}

	return DefaultSelector()
}

// ParseSelectorString normalizes a string selector. Numeric strings
// parse as an index, alias names match case-insensitively, and
// everything else resolves to the default selector.
func ParseSelectorString(s string) Selector {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSelector()
	}

	if idx, err := strconv.Atoi(s); err == nil {
		return IndexSelector(idx)
	}

	switch ChannelName(s) {
	case ChannelLeft, ChannelRight, ChannelMid, ChannelSide:
		return AliasSelector(ChannelName(s))
	}

	return DefaultSelector()
}
