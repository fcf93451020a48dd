package gsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/danmuck/gsxws/internal/protocol"
)

// TrackingPlaceholder is replaced by the delivery tracking number in a
// part's carrierURL.
const TrackingPlaceholder = "<<TRKNO>>"

func confirmationNumbers(numbers []string) (protocol.Value, error) {
	if len(numbers) == 0 {
		return protocol.Value{}, fmt.Errorf("%w: no repair confirmation numbers", ErrInvalidArgument)
	}
	items := make([]protocol.Value, 0, len(numbers))
	for _, n := range numbers {
		items = append(items, protocol.String(n))
	}
	return protocol.List(items...), nil
}

// RepairStatus fetches the status of one or more repairs. A single status
// comes back as a map, several as a list.
func (c *Client) RepairStatus(ctx context.Context, numbers ...string) (*Result, error) {
	list, err := confirmationNumbers(numbers)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpRepairStatus, protocol.NewMap().Set("repairConfirmationNumbers", list))
}

// MarkRepairComplete marks the given repairs complete.
func (c *Client) MarkRepairComplete(ctx context.Context, numbers ...string) (*Result, error) {
	list, err := confirmationNumbers(numbers)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpMarkRepairComplete, protocol.NewMap().Set("repairConfirmationNumbers", list))
}

// RepairDetails returns the first detail record for dispatchID with every
// part's carrierURL pointing at its tracking number.
func (c *Client) RepairDetails(ctx context.Context, dispatchID string) (*Result, error) {
	if strings.TrimSpace(dispatchID) == "" {
		return nil, fmt.Errorf("%w: empty dispatch id", ErrInvalidArgument)
	}
	res, err := c.call(ctx, OpRepairDetails, protocol.NewMap().Set("dispatchId", protocol.String(dispatchID)))
	if err != nil {
		return nil, err
	}
	records := res.Items()
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s.lookupResponseData is empty", ErrResultMissing, OpRepairDetails)
	}
	details := records[0]
	if parts, ok := details.Get("partsInfo"); ok {
		for _, part := range parts.Items() {
			patchCarrierURL(part)
		}
	}
	return &Result{Value: details, Report: res.Report}, nil
}

// patchCarrierURL substitutes the tracking number into carrierURL in place.
// Parts missing either field are left alone.
func patchCarrierURL(part protocol.Value) {
	m, err := part.Map()
	if err != nil {
		return
	}
	tracking, ok := m.Get("deliveryTrackingNumber")
	if !ok {
		return
	}
	url, ok := m.Get("carrierURL")
	if !ok {
		return
	}
	m.Set("carrierURL", protocol.String(strings.ReplaceAll(url.Text(), TrackingPlaceholder, tracking.Text())))
}

// CreateCarryInRepair submits a carry-in repair. Dates, times and booleans
// in repair are rendered in the client's locale.
func (c *Client) CreateCarryInRepair(ctx context.Context, repair Payload) (*Result, error) {
	body, err := c.request("repairData", repair)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, OpCreateCarryInRepair, body)
}

// UpdateKGBSerialNumber records the known-good-board serial number of a
// released whole unit repair.
func (c *Client) UpdateKGBSerialNumber(ctx context.Context, confirmation, serial string) (*Result, error) {
	if confirmation == "" || serial == "" {
		return nil, fmt.Errorf("%w: confirmation and serial number are required", ErrInvalidArgument)
	}
	body := protocol.NewMap().
		Set("repairConfirmationNumber", protocol.String(confirmation)).
		Set("serialNumber", protocol.String(serial))
	return c.call(ctx, OpKGBSerialNumberUpdate, body)
}
