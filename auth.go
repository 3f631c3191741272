package client

import "context"

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterUser creates a backend account and returns the new session. The
// returned token is not stored on the client; pass it to
// [Client.SetAuthToken] to authenticate subsequent requests.
func (c *Client) RegisterUser(ctx context.Context, username, password string) (*AuthSession, error) {
	resp, err := c.post(ctx, "/auth/register/", credentials{Username: username, Password: password}, false)
	if err != nil {
		return nil, err
	}

	return parseResponse[AuthSession](resp, "Registration failed.")
}

// LoginUser authenticates against the backend and returns the session.
func (c *Client) LoginUser(ctx context.Context, username, password string) (*AuthSession, error) {
	resp, err := c.post(ctx, "/auth/login/", credentials{Username: username, Password: password}, false)
	if err != nil {
		return nil, err
	}

	return parseResponse[AuthSession](resp, "Login failed.")
}

// LogoutUser invalidates the current session token on the backend. The
// client keeps its local copy; call [Client.ClearAuthToken] to drop it.
func (c *Client) LogoutUser(ctx context.Context) error {
	resp, err := c.post(ctx, "/auth/logout/", nil, true)
	if err != nil {
		return err
	}

	_, err = parseResponse[struct{}](resp, "Logout failed.")

	return err
}

// LinkCampfireAccount associates a Campfire member with the logged-in user.
func (c *Client) LinkCampfireAccount(ctx context.Context, link AccountLink) (*AuthSession, error) {
	resp, err := c.post(ctx, "/auth/campfire/", link, true)
	if err != nil {
		return nil, err
	}

	return parseResponse[AuthSession](resp, "Unable to link Campfire account.")
}

// UnlinkCampfireAccount removes the Campfire association from the logged-in
// user.
func (c *Client) UnlinkCampfireAccount(ctx context.Context) error {
	resp, err := c.delete(ctx, "/auth/campfire/", true)
	if err != nil {
		return err
	}

	_, err = parseResponse[struct{}](resp, "Unable to unlink Campfire account.")

	return err
}
