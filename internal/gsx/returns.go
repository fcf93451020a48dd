package gsx

import (
	"context"
	"fmt"

	"github.com/danmuck/gsxws/internal/identifier"
	"github.com/danmuck/gsxws/internal/protocol"
)

// ReturnLabel fetches the return label of partNumber on a return order.
// Label, packing list and proforma files arrive base64 decoded as bytes.
func (c *Client) ReturnLabel(ctx context.Context, returnOrder, partNumber string) (*Result, error) {
	if !identifier.Is(partNumber, identifier.PartNumber) {
		return nil, fmt.Errorf("%w: %q is not a valid part number", identifier.ErrInvalidInput, partNumber)
	}
	body := protocol.NewMap().
		Set("returnOrderNumber", protocol.String(returnOrder)).
		Set("partNumber", protocol.String(partNumber))
	return c.call(ctx, OpReturnLabel, body)
}

// PartsPendingReturn lists parts pending return for the search criteria.
func (c *Client) PartsPendingReturn(ctx context.Context, criteria Payload) (*Result, error) {
	body, err := c.request("repairData", criteria)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpPartsPendingReturn, body)
}
