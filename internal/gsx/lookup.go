package gsx

import (
	"context"

	"github.com/danmuck/gsxws/internal/protocol"
)

// request marshals p and nests it under field.
func (c *Client) request(field string, p Payload) (*protocol.Map, error) {
	data, err := c.marshal(p)
	if err != nil {
		return nil, err
	}
	return protocol.NewMap().Set(field, protocol.MapOf(data)), nil
}

// PartsLookup searches parts and part pricing by any part attribute
// (serial number, EEE code, config code, part number).
func (c *Client) PartsLookup(ctx context.Context, query Payload) (*Result, error) {
	body, err := c.request("lookupRequestData", query)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpPartsLookup, body)
}

// RepairLookup searches repairs matching query. The remote side caps the
// result at 2500 repairs.
func (c *Client) RepairLookup(ctx context.Context, query Payload) (*Result, error) {
	body, err := c.request("lookupRequestData", query)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpRepairLookup, body)
}
