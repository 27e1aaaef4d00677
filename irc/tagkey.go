package irc

// TagKey is a closed enumeration of every IRCv3 tag key the Twitch chat
// wire protocol is known to send. Resolving raw bytes to a TagKey is a
// single map lookup — O(key length) to compute the map key, branch-free
// beyond that — so ambiguity between two different wire keys is
// impossible by construction: they simply aren't the same map entry.
// Keys Twitch does not document resolve to Unknown; the raw key span is
// never discarded by the parser itself (see RawTag), only by a Whitelist.
//
// This mirrors the shape of the teacher's headersParsers dispatch table
// (sip/parse_header.go) generalized from "a handful of SIP headers" to
// "every Twitch tag key", and is deliberately a flat map rather than a
// hand-rolled trie: spec.md §4.8 leaves the dispatch strategy to
// implementer discretion as long as it is O(key length) and
// branch-predictable, which a Go map satisfies.
type TagKey int

const (
	TagUnknown TagKey = iota

	TagBadgeInfo
	TagBadges
	TagBanDuration
	TagBits
	TagBroadcasterLang
	TagClientNonce
	TagColor
	TagDisplayName
	TagEmoteOnly
	TagEmoteSets
	TagEmotes
	TagFirstMsg
	TagFlags
	TagFollowersOnly
	TagHistorical
	TagID
	TagLogin
	TagMercury
	TagMod
	TagMsgID
	TagMsgParamAnonGift
	TagMsgParamCategory
	TagMsgParamColor
	TagMsgParamCumulativeMonths
	TagMsgParamCumulativeTenureMonths
	TagMsgParamDisplayName
	TagMsgParamDomain
	TagMsgParamExponent
	TagMsgParamFunString
	TagMsgParamGifterID
	TagMsgParamGifterLogin
	TagMsgParamGifterName
	TagMsgParamGiftMonths
	TagMsgParamGoalContributionType
	TagMsgParamGoalCurrentContributions
	TagMsgParamGoalDescription
	TagMsgParamGoalTargetContributions
	TagMsgParamMassGiftCount
	TagMsgParamMonths
	TagMsgParamMultimonthDuration
	TagMsgParamMultimonthTenure
	TagMsgParamOriginID
	TagMsgParamPriorGifterAnonymous
	TagMsgParamPriorGifterDisplayName
	TagMsgParamPriorGifterID
	TagMsgParamPriorGifterUserName
	TagMsgParamPromoGiftTotal
	TagMsgParamPromoName
	TagMsgParamRecipientDisplayName
	TagMsgParamRecipientID
	TagMsgParamRecipientUserName
	TagMsgParamRitualName
	TagMsgParamSenderCount
	TagMsgParamSenderLogin
	TagMsgParamSenderName
	TagMsgParamShouldShareStreak
	TagMsgParamStreakMonths
	TagMsgParamSubPlan
	TagMsgParamSubPlanName
	TagMsgParamThreshold
	TagMsgParamViewerCount
	TagMsgParamWasGifted
	TagR9K
	TagReplyParentDisplayName
	TagReplyParentMsgBody
	TagReplyParentMsgID
	TagReplyParentUserID
	TagReplyParentUserLogin
	TagReplyThreadParentMsgID
	TagReplyThreadParentUserLogin
	TagReturningChatter
	TagRituals
	TagRoomID
	TagRmReceivedTs
	TagServerTime
	TagSlow
	TagSubscriber
	TagSubsOnly
	TagSystemMsg
	TagTargetMsgID
	TagTargetUserID
	TagThreadID
	TagTmiSentTs
	TagTurbo
	TagUntil
	TagUserID
	TagUserType
	TagVip
	TagWarnReason

	tagKeyCount
)

// tagKeyNames is indexed by TagKey and holds the exact wire spelling
// (lowercase, hyphenated) for every known key. TagUnknown has no wire
// spelling of its own: it always carries the original Span instead.
var tagKeyNames = [tagKeyCount]string{
	TagUnknown:                           "",
	TagBadgeInfo:                         "badge-info",
	TagBadges:                            "badges",
	TagBanDuration:                       "ban-duration",
	TagBits:                              "bits",
	TagBroadcasterLang:                   "broadcaster-lang",
	TagClientNonce:                       "client-nonce",
	TagColor:                             "color",
	TagDisplayName:                       "display-name",
	TagEmoteOnly:                         "emote-only",
	TagEmoteSets:                         "emote-sets",
	TagEmotes:                            "emotes",
	TagFirstMsg:                          "first-msg",
	TagFlags:                             "flags",
	TagFollowersOnly:                     "followers-only",
	TagHistorical:                        "historical",
	TagID:                                "id",
	TagLogin:                             "login",
	TagMercury:                           "mercury",
	TagMod:                               "mod",
	TagMsgID:                             "msg-id",
	TagMsgParamAnonGift:                  "msg-param-anon-gift",
	TagMsgParamCategory:                  "msg-param-category",
	TagMsgParamColor:                     "msg-param-color",
	TagMsgParamCumulativeMonths:          "msg-param-cumulative-months",
	TagMsgParamCumulativeTenureMonths:    "msg-param-cumulative-tenure-months",
	TagMsgParamDisplayName:               "msg-param-displayName",
	TagMsgParamDomain:                    "msg-param-domain",
	TagMsgParamExponent:                  "msg-param-exponent",
	TagMsgParamFunString:                 "msg-param-fun-string",
	TagMsgParamGifterID:                  "msg-param-gifter-id",
	TagMsgParamGifterLogin:               "msg-param-gifter-login",
	TagMsgParamGifterName:                "msg-param-gifter-name",
	TagMsgParamGiftMonths:                "msg-param-gift-months",
	TagMsgParamGoalContributionType:      "msg-param-goal-contribution-type",
	TagMsgParamGoalCurrentContributions:  "msg-param-goal-current-contributions",
	TagMsgParamGoalDescription:           "msg-param-goal-description",
	TagMsgParamGoalTargetContributions:   "msg-param-goal-target-contributions",
	TagMsgParamMassGiftCount:             "msg-param-mass-gift-count",
	TagMsgParamMonths:                    "msg-param-months",
	TagMsgParamMultimonthDuration:        "msg-param-multimonth-duration",
	TagMsgParamMultimonthTenure:          "msg-param-multimonth-tenure",
	TagMsgParamOriginID:                  "msg-param-origin-id",
	TagMsgParamPriorGifterAnonymous:      "msg-param-prior-gifter-anonymous",
	TagMsgParamPriorGifterDisplayName:    "msg-param-prior-gifter-display-name",
	TagMsgParamPriorGifterID:             "msg-param-prior-gifter-id",
	TagMsgParamPriorGifterUserName:       "msg-param-prior-gifter-user-name",
	TagMsgParamPromoGiftTotal:            "msg-param-promo-gift-total",
	TagMsgParamPromoName:                 "msg-param-promo-name",
	TagMsgParamRecipientDisplayName:      "msg-param-recipient-display-name",
	TagMsgParamRecipientID:               "msg-param-recipient-id",
	TagMsgParamRecipientUserName:         "msg-param-recipient-user-name",
	TagMsgParamRitualName:                "msg-param-ritual-name",
	TagMsgParamSenderCount:               "msg-param-sender-count",
	TagMsgParamSenderLogin:               "msg-param-sender-login",
	TagMsgParamSenderName:                "msg-param-sender-name",
	TagMsgParamShouldShareStreak:         "msg-param-should-share-streak",
	TagMsgParamStreakMonths:              "msg-param-streak-months",
	TagMsgParamSubPlan:                   "msg-param-sub-plan",
	TagMsgParamSubPlanName:               "msg-param-sub-plan-name",
	TagMsgParamThreshold:                 "msg-param-threshold",
	TagMsgParamViewerCount:               "msg-param-viewerCount",
	TagMsgParamWasGifted:                 "msg-param-was-gifted",
	TagR9K:                               "r9k",
	TagReplyParentDisplayName:            "reply-parent-display-name",
	TagReplyParentMsgBody:                "reply-parent-msg-body",
	TagReplyParentMsgID:                  "reply-parent-msg-id",
	TagReplyParentUserID:                 "reply-parent-user-id",
	TagReplyParentUserLogin:              "reply-parent-user-login",
	TagReplyThreadParentMsgID:            "reply-thread-parent-msg-id",
	TagReplyThreadParentUserLogin:        "reply-thread-parent-user-login",
	TagReturningChatter:                  "returning-chatter",
	TagRituals:                           "rituals",
	TagRoomID:                            "room-id",
	TagRmReceivedTs:                      "rm-received-ts",
	TagServerTime:                        "server-time",
	TagSlow:                              "slow",
	TagSubscriber:                        "subscriber",
	TagSubsOnly:                          "subs-only",
	TagSystemMsg:                         "system-msg",
	TagTargetMsgID:                       "target-msg-id",
	TagTargetUserID:                      "target-user-id",
	TagThreadID:                          "thread-id",
	TagTmiSentTs:                         "tmi-sent-ts",
	TagTurbo:                             "turbo",
	TagUntil:                             "until",
	TagUserID:                            "user-id",
	TagUserType:                          "user-type",
	TagVip:                               "vip",
	TagWarnReason:                        "warn-reason",
}

var tagKeyByName map[string]TagKey

func init() {
	tagKeyByName = make(map[string]TagKey, tagKeyCount)
	for k, name := range tagKeyNames {
		if name == "" {
			continue
		}
		tagKeyByName[name] = TagKey(k)
	}
}

// String returns the wire spelling of the key, or "" for TagUnknown (whose
// spelling is only recoverable from the Span it was resolved from).
func (k TagKey) String() string {
	if k < 0 || int(k) >= len(tagKeyNames) {
		return ""
	}
	return tagKeyNames[k]
}

// ResolveTagKey maps a raw tag-key string to its TagKey, or TagUnknown if
// the key is not one Twitch documents. Taking a string rather than a
// []byte keeps the lookup allocation-free: Go's map implementation
// special-cases a string-keyed map indexed by a substring of an existing
// string, with no copy.
func ResolveTagKey(key string) TagKey {
	if k, ok := tagKeyByName[key]; ok {
		return k
	}
	return TagUnknown
}
