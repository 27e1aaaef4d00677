package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTagKeyKnown(t *testing.T) {
	cases := map[string]TagKey{
		"badge-info":    TagBadgeInfo,
		"display-name":  TagDisplayName,
		"tmi-sent-ts":   TagTmiSentTs,
		"room-id":       TagRoomID,
		"mod":           TagMod,
		"msg-param-sub-plan": TagMsgParamSubPlan,
	}
	for name, want := range cases {
		got := ResolveTagKey(name)
		assert.Equal(t, want, got, name)
		assert.Equal(t, name, got.String())
	}
}

func TestResolveTagKeyUnknown(t *testing.T) {
	assert.Equal(t, TagUnknown, ResolveTagKey("not-a-real-tag"))
	assert.Equal(t, TagUnknown, ResolveTagKey(""))
	assert.Equal(t, "", TagUnknown.String())
}

func TestTagKeyNamesDisjoint(t *testing.T) {
	seen := make(map[string]TagKey, len(tagKeyNames))
	for k, name := range tagKeyNames {
		if name == "" {
			continue
		}
		if other, ok := seen[name]; ok {
			t.Fatalf("duplicate tag name %q for keys %v and %v", name, other, TagKey(k))
		}
		seen[name] = TagKey(k)
	}
}
