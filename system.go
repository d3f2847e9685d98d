package dhis2

import "context"

// GetSystemInfo retrieves the system information of the server.
func (c *Client) GetSystemInfo(ctx context.Context) (*SystemInfo, error) {
	var info SystemInfo
	if err := c.getJSON(ctx, apiPath("system", "info"), nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetSystemSettings retrieves the system settings as raw key-value pairs.
func (c *Client) GetSystemSettings(ctx context.Context) (SystemSettings, error) {
	var settings SystemSettings
	if err := c.getJSON(ctx, apiPath("systemSettings"), nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Status probes the server by requesting the system info endpoint and
// returns the HTTP status code. Useful for checking connectivity and
// credentials without decoding a payload.
func (c *Client) Status(ctx context.Context) (int, error) {
	return c.head(ctx, apiPath("system", "info"))
}
