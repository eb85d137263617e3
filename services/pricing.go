package services

import (
	"context"

	"github.com/voiceorder/menu-api/models"
)

// MaxQuantity caps a single line or option quantity.
const MaxQuantity = 999

type CartOption struct {
	OptionID uint
	Quantity int
}

// CartLine is one menu item selection in a cart.
type CartLine struct {
	MenuItemID uint
	Quantity   int
	Options    []CartOption
}

type PricedOption struct {
	OptionID    uint
	Name        string
	Quantity    int
	OptionPrice int
}

type PricedLine struct {
	MenuItemID uint
	Name       string
	Quantity   int
	ItemPrice  int
	TotalPrice int
	Options    []PricedOption
}

// Breakdown is a fully validated and priced cart, ready to be saved.
type Breakdown struct {
	Lines       []PricedLine
	TotalAmount int
}

// PriceCart resolves every line against the catalog and computes totals.
// It stops at the first unresolved menu item or option.
func PriceCart(ctx context.Context, catalog CatalogReader, lines []CartLine) (*Breakdown, error) {
	breakdown := &Breakdown{Lines: make([]PricedLine, 0, len(lines))}
	optionsByType := make(map[models.OptionType]map[uint]models.Option)

	for _, line := range lines {
		if line.Quantity < 1 || line.Quantity > MaxQuantity {
			return nil, &InvalidQuantityError{Field: "menu item", Quantity: line.Quantity}
		}

		item, err := catalog.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}

		lineTotal, ok := mulAmount(item.Price, line.Quantity)
		if !ok {
			return nil, &AmountOverflowError{MenuItemID: item.ID}
		}

		priced := PricedLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			ItemPrice:  item.Price,
			TotalPrice: lineTotal,
			Options:    make([]PricedOption, 0, len(line.Options)),
		}

		if len(line.Options) > 0 {
			optionType, ok := item.OptionType()

			var allowed map[uint]models.Option
			if ok {
				allowed, err = allowedOptions(ctx, catalog, optionType, optionsByType)
				if err != nil {
					return nil, err
				}
			}

			for _, requested := range line.Options {
				if requested.Quantity < 1 || requested.Quantity > MaxQuantity {
					return nil, &InvalidQuantityError{Field: "option", Quantity: requested.Quantity}
				}
				option, found := allowed[requested.OptionID]
				if !found {
					return nil, &OptionNotFoundError{ID: requested.OptionID}
				}
				priced.Options = append(priced.Options, PricedOption{
					OptionID:    option.ID,
					Name:        option.Name,
					Quantity:    requested.Quantity,
					OptionPrice: option.Price,
				})
				optionTotal, ok := mulAmount(option.Price, requested.Quantity)
				if ok {
					priced.TotalPrice, ok = addAmount(priced.TotalPrice, optionTotal)
				}
				if !ok {
					return nil, &AmountOverflowError{MenuItemID: item.ID}
				}
			}
		}

		total, ok := addAmount(breakdown.TotalAmount, priced.TotalPrice)
		if !ok {
			return nil, &AmountOverflowError{MenuItemID: item.ID}
		}
		breakdown.TotalAmount = total
		breakdown.Lines = append(breakdown.Lines, priced)
	}

	return breakdown, nil
}

// allowedOptions loads each option type once per cart.
func allowedOptions(ctx context.Context, catalog CatalogReader, optionType models.OptionType, cache map[models.OptionType]map[uint]models.Option) (map[uint]models.Option, error) {
	if allowed, ok := cache[optionType]; ok {
		return allowed, nil
	}

	options, err := catalog.ListOptions(ctx, optionType)
	if err != nil {
		return nil, err
	}

	allowed := make(map[uint]models.Option, len(options))
	for _, o := range options {
		allowed[o.ID] = o
	}
	cache[optionType] = allowed
	return allowed, nil
}

// mulAmount multiplies a price by a positive quantity, reporting false on overflow.
func mulAmount(price, quantity int) (int, bool) {
	product := price * quantity
	if quantity != 0 && product/quantity != price {
		return 0, false
	}
	return product, true
}

func addAmount(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
