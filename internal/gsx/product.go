package gsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/danmuck/gsxws/internal/protocol"
)

func requireSerial(serial string) error {
	if strings.TrimSpace(serial) == "" {
		return fmt.Errorf("%w: empty serial number", ErrInvalidArgument)
	}
	return nil
}

// WarrantyStatus returns the unit level warranty details for serial.
func (c *Client) WarrantyStatus(ctx context.Context, serial string) (*Result, error) {
	if err := requireSerial(serial); err != nil {
		return nil, err
	}
	unit := protocol.NewMap().Set("serialNumber", protocol.String(serial))
	return c.call(ctx, OpWarrantyStatus, protocol.NewMap().Set("unitDetail", protocol.MapOf(unit)))
}

func (c *Client) FetchProductModel(ctx context.Context, serial string) (*Result, error) {
	if err := requireSerial(serial); err != nil {
		return nil, err
	}
	req := protocol.NewMap().Set("serialNumber", protocol.String(serial))
	return c.call(ctx, OpFetchProductModel, protocol.NewMap().Set("productModelRequest", protocol.MapOf(req)))
}

// FetchIOSActivation returns activation details of an iOS device.
func (c *Client) FetchIOSActivation(ctx context.Context, serial string) (*Result, error) {
	if err := requireSerial(serial); err != nil {
		return nil, err
	}
	return c.call(ctx, OpFetchIOSActivationDetails, protocol.NewMap().Set("serialNumber", protocol.String(serial)))
}

// ProductParts looks up the parts of the product identified by serial.
func (c *Client) ProductParts(ctx context.Context, serial string) (*Result, error) {
	if err := requireSerial(serial); err != nil {
		return nil, err
	}
	return c.PartsLookup(ctx, Payload{"serialNumber": serial})
}

// ProductRepairs looks up the repairs of the product identified by serial.
func (c *Client) ProductRepairs(ctx context.Context, serial string) (*Result, error) {
	if err := requireSerial(serial); err != nil {
		return nil, err
	}
	return c.RepairLookup(ctx, Payload{"serialNumber": serial})
}
