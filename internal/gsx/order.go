package gsx

import (
	"context"
	"fmt"

	"github.com/danmuck/gsxws/internal/protocol"
)

// OrderLine is one part on a stocking order.
type OrderLine struct {
	PartNumber string
	Quantity   int
}

// StockingOrder accumulates order lines for CreateStockingOrder.
type StockingOrder struct {
	Lines []OrderLine
	// Extra is merged into orderData after the lines (purchaseOrderNumber,
	// shipToCode and the like).
	Extra Payload
}

func (o *StockingOrder) AddPart(partNumber string, quantity int) *StockingOrder {
	o.Lines = append(o.Lines, OrderLine{PartNumber: partNumber, Quantity: quantity})
	return o
}

// CreateStockingOrder submits order and returns its confirmation.
func (c *Client) CreateStockingOrder(ctx context.Context, order *StockingOrder) (*Result, error) {
	if order == nil || len(order.Lines) == 0 {
		return nil, fmt.Errorf("%w: stocking order has no lines", ErrInvalidArgument)
	}
	data, err := c.marshal(order.Extra)
	if err != nil {
		return nil, err
	}
	lines := make([]protocol.Value, 0, len(order.Lines))
	for _, l := range order.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: part %s quantity %d", ErrInvalidArgument, l.PartNumber, l.Quantity)
		}
		line := protocol.NewMap().
			Set("partNumber", protocol.String(l.PartNumber)).
			Set("quantity", protocol.String(fmt.Sprint(l.Quantity)))
		lines = append(lines, protocol.MapOf(line))
	}
	orderData := protocol.NewMap().Set("orderLines", protocol.List(lines...))
	for _, k := range data.Keys() {
		v, _ := data.Get(k)
		orderData.Set(k, v)
	}
	return c.call(ctx, OpCreateStockingOrder, protocol.NewMap().Set("orderData", protocol.MapOf(orderData)))
}
