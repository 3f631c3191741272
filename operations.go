package client

import (
	"context"
	"net/url"
	"strings"
)

// ClubLookupParams selects which club to look up. Query is free-text input
// (a deep link, an ID, or anything the backend can normalize) and takes
// priority: when set, ID and URL are ignored. Otherwise ID and URL are sent
// independently.
type ClubLookupParams struct {
	Query string
	ID    string
	URL   string
}

func (p ClubLookupParams) values() url.Values {
	v := url.Values{}

	if query := strings.TrimSpace(p.Query); query != "" {
		v.Set("club", query)
		return v
	}

	if id := strings.TrimSpace(p.ID); id != "" {
		v.Set("id", id)
	}

	if u := strings.TrimSpace(p.URL); u != "" {
		v.Set("url", u)
	}

	return v
}

// GetHealth checks that the backend is reachable and serving.
func (c *Client) GetHealth(ctx context.Context) (*Health, error) {
	resp, err := c.get(ctx, "/health/", nil, false)
	if err != nil {
		return nil, err
	}

	return parseResponse[Health](resp, "Health check failed.")
}

// GetCampfireConfig reports the backend's upstream Campfire client
// configuration.
func (c *Client) GetCampfireConfig(ctx context.Context) (*CampfireConfig, error) {
	resp, err := c.get(ctx, "/campfire/config/", nil, false)
	if err != nil {
		return nil, err
	}

	return parseResponse[CampfireConfig](resp, "Unable to load Campfire config.")
}

// ImportCampfireEvent imports a Campfire event by ID or meetup URL and
// returns the persisted event, including its club and RSVPs.
func (c *Client) ImportCampfireEvent(ctx context.Context, eventReference string) (*CampfireEvent, error) {
	resp, err := c.post(ctx, "/campfire/events/import/", map[string]string{"event": eventReference}, false)
	if err != nil {
		return nil, err
	}

	return parseResponse[CampfireEvent](resp, "Unable to import event.")
}

// LookupCampfireClub resolves a club by free-text query, ID, or URL.
func (c *Client) LookupCampfireClub(ctx context.Context, params ClubLookupParams) (*CampfireClub, error) {
	resp, err := c.get(ctx, "/campfire/clubs/lookup/", params.values(), false)
	if err != nil {
		return nil, err
	}

	return parseResponse[CampfireClub](resp, "Unable to look up club.")
}

// LookupCampfireClubByReference extracts a club deep link or ID from raw
// text and resolves it. It fails without a network round trip when the text
// contains no reference or more than one.
func (c *Client) LookupCampfireClubByReference(ctx context.Context, raw string) (*CampfireClub, error) {
	ref, err := ExtractClubReference(raw)
	if err != nil {
		return nil, err
	}

	if ref.IsZero() {
		return nil, ErrNoClubReference
	}

	return c.LookupCampfireClub(ctx, ClubLookupParams{ID: ref.ID, URL: ref.URL})
}

// StoreCampfireToken registers a Campfire access token with the backend and
// returns its decoded identity (email, expiry).
func (c *Client) StoreCampfireToken(ctx context.Context, token string) (*CampfireToken, error) {
	resp, err := c.post(ctx, "/campfire/tokens/", map[string]string{"token": token}, false)
	if err != nil {
		return nil, err
	}

	return parseResponse[CampfireToken](resp, "Unable to store token.")
}

// ListCampfireTokens returns the Campfire tokens the backend currently
// considers valid.
func (c *Client) ListCampfireTokens(ctx context.Context) ([]CampfireToken, error) {
	resp, err := c.get(ctx, "/campfire/tokens/", nil, false)
	if err != nil {
		return nil, err
	}

	tokens, err := parseResponse[[]CampfireToken](resp, "Unable to list tokens.")
	if err != nil || tokens == nil {
		return nil, err
	}

	return *tokens, nil
}

// ImportCampfireClubHistory imports all historical meetups for a club,
// identified by deep link or ID. Requires a session token.
func (c *Client) ImportCampfireClubHistory(ctx context.Context, clubReference string) (*ClubHistoryImport, error) {
	resp, err := c.post(ctx, "/campfire/clubs/import-history/", map[string]string{"club": clubReference}, true)
	if err != nil {
		return nil, err
	}

	return parseResponse[ClubHistoryImport](resp, "Unable to import club history.")
}
