package client

import "time"

// Health is the payload of the backend health check.
type Health struct {
	Status string `json:"status"`
}

// CampfireMember is a club or event participant.
type CampfireMember struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatar_url"`
	ClubRank    string `json:"club_rank"`
}

// CampfireClub is a club as stored by the backend after a lookup or import.
type CampfireClub struct {
	ID                           string          `json:"id"`
	Name                         string          `json:"name"`
	Game                         string          `json:"game"`
	Visibility                   string          `json:"visibility"`
	AvatarURL                    string          `json:"avatar_url"`
	CreatedByCommunityAmbassador bool            `json:"created_by_community_ambassador"`
	BadgeGrants                  []string        `json:"badge_grants"`
	Creator                      *CampfireMember `json:"creator"`
}

// EventRSVP is a member's RSVP on an event.
type EventRSVP struct {
	Member CampfireMember `json:"member"`
	Status string         `json:"status"`
}

// CampfireEvent is an imported Campfire event, including its club and RSVPs.
type CampfireEvent struct {
	ID                           string          `json:"id"`
	Name                         string          `json:"name"`
	Details                      string          `json:"details"`
	Address                      string          `json:"address"`
	Location                     string          `json:"location"`
	CoverPhotoURL                string          `json:"cover_photo_url"`
	MapPreviewURL                string          `json:"map_preview_url"`
	EventTime                    *time.Time      `json:"event_time"`
	EventEndTime                 *time.Time      `json:"event_end_time"`
	RSVPStatus                   string          `json:"rsvp_status"`
	CreatedByCommunityAmbassador bool            `json:"created_by_community_ambassador"`
	DiscordInterested            int             `json:"discord_interested"`
	BadgeGrants                  []string        `json:"badge_grants"`
	CampfireLiveEventID          string          `json:"campfire_live_event_id"`
	CampfireLiveEventName        string          `json:"campfire_live_event_name"`
	CheckedInMembersCount        int             `json:"checked_in_members_count"`
	MembersTotal                 int             `json:"members_total"`
	Club                         *CampfireClub   `json:"club"`
	Creator                      *CampfireMember `json:"creator"`
	RSVPs                        []EventRSVP     `json:"rsvps"`
}

// CampfireToken describes a registered Campfire access token. The token
// value itself is never echoed back by the backend.
type CampfireToken struct {
	ID        int        `json:"id"`
	Email     string     `json:"email"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedAt *time.Time `json:"created_at"`
}

// CampfireConfig is the backend's Campfire client configuration: the rate
// limiter interval and burst, and how often upstream calls are retried.
type CampfireConfig struct {
	EverySeconds float64 `json:"every_seconds"`
	Burst        int     `json:"burst"`
	MaxRetries   int     `json:"max_retries"`
}

// AuthSession is returned by registration, login, and account linking.
// CampfireMemberID and CampfireUsername are nil while no Campfire account
// is linked.
type AuthSession struct {
	Username         string  `json:"username"`
	Token            string  `json:"token"`
	CampfireMemberID *string `json:"campfire_member_id"`
	CampfireUsername *string `json:"campfire_username"`
}

// AccountLink identifies the Campfire account to associate with the
// logged-in user.
type AccountLink struct {
	MemberID string `json:"campfire_member_id"`
	Username string `json:"campfire_username"`
}

// ClubHistoryImport summarizes a club history import: the club itself and
// the historical events that were persisted.
type ClubHistoryImport struct {
	Club           CampfireClub `json:"club"`
	EventsImported int          `json:"events_imported"`
	EventIDs       []string     `json:"event_ids"`
}
