package gsx

import "context"

// FetchDiagnostics returns diagnostic results for query. Queries carrying
// alternateDeviceId are served by the iOS diagnostic repository, all others
// by the repair diagnostic repository.
func (c *Client) FetchDiagnostics(ctx context.Context, query Payload) (*Result, error) {
	op := OpFetchRepairDiagnostic
	if _, ok := query["alternateDeviceId"]; ok {
		op = OpFetchIOSDiagnostic
	}
	body, err := c.request("lookupRequestData", query)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, op, body)
}
