package gsx

import "context"

// CreateEscalation opens a general escalation.
func (c *Client) CreateEscalation(ctx context.Context, req Payload) (*Result, error) {
	body, err := c.request("escalationRequest", req)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateGeneralEscalation, body)
}

// UpdateEscalation updates an existing general escalation.
func (c *Client) UpdateEscalation(ctx context.Context, req Payload) (*Result, error) {
	body, err := c.request("escalationRequest", req)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpUpdateGeneralEscalation, body)
}
