package gsx

import (
	"context"
	"fmt"

	"github.com/danmuck/gsxws/internal/reference"
)

// CompTIACodes fetches the live CompTIA code book. Groups are keyed by
// componentId; entries missing a code are skipped.
func (c *Client) CompTIACodes(ctx context.Context) (*reference.CodeBook, error) {
	res, err := c.call(ctx, OpCompTIACodes, nil)
	if err != nil {
		return nil, err
	}
	book := &reference.CodeBook{
		Symptoms:  map[string]map[string]string{},
		Modifiers: map[string]string{},
	}
	groups, _ := res.Get("comptiaGroup")
	for _, group := range groups.Items() {
		id, ok := group.Get("componentId")
		if !ok || id.Text() == "" {
			continue
		}
		codes := book.Symptoms[id.Text()]
		if codes == nil {
			codes = map[string]string{}
			book.Symptoms[id.Text()] = codes
		}
		infos, _ := group.Get("comptiaCodeInfo")
		for _, info := range infos.Items() {
			code, _ := info.Get("comptiaCode")
			desc, _ := info.Get("comptiaDescription")
			if code.Text() != "" {
				codes[code.Text()] = desc.Text()
			}
		}
	}
	modifiers, _ := res.Get("comptiaModifier")
	for _, mod := range modifiers.Items() {
		code, _ := mod.Get("modifierCode")
		desc, _ := mod.Get("comptiaDescription")
		if code.Text() != "" {
			book.Modifiers[code.Text()] = desc.Text()
		}
	}
	if len(book.Symptoms) == 0 && len(book.Modifiers) == 0 {
		return nil, fmt.Errorf("%w: %s returned no codes", ErrResultMissing, OpCompTIACodes)
	}
	return book, nil
}
