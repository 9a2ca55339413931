package game

import (
	"fmt"
	"math"
)

// Tradeable items. The whitelist is closed; the resource helpers reject
// anything else.
const (
	ItemFood = "food"
	ItemAmmo = "ammo"
)

// TradeOffer is one deal at a trading post. A positive price is money the
// player pays to buy; a negative price is money the trader pays the player.
type TradeOffer struct {
	Item     string
	Quantity int
	Price    int
}

// Describe renders the offer the way the shell shows it.
func (o TradeOffer) Describe() string {
	if o.Price > 0 {
		return fmt.Sprintf("Buy %d %s for $%d", o.Quantity, o.Item, o.Price)
	}
	return fmt.Sprintf("Sell %d %s for $%d", o.Quantity, o.Item, -o.Price)
}

func (s *State) resource(item string) (int, error) {
	switch item {
	case ItemFood:
		return s.Food, nil
	case ItemAmmo:
		return s.Ammo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResource, item)
}

// addResource mutates a tradeable resource, flooring the result at zero.
func (s *State) addResource(item string, delta int) error {
	switch item {
	case ItemFood:
		s.Food = max(0, s.Food+delta)
	case ItemAmmo:
		s.Ammo = max(0, s.Ammo+delta)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResource, item)
	}
	return nil
}

// rollTradePost regenerates the trading post for the coming day. With the
// given probability it spawns 1..MaxOffers independent offers; otherwise the
// post stays closed. The offer list and the availability flag always move
// together.
func (j *Journey) rollTradePost(probability float64) {
	j.clearTradePost()
	if j.rng() > probability {
		return
	}
	count := j.rng.Between(1, j.cat.Trade.MaxOffers)
	for i := 0; i < count; i++ {
		item := ItemFood
		if j.rng() >= 0.5 {
			item = ItemAmmo
		}
		spec := j.cat.Trade.Items[item]
		qty := j.rng.Between(spec.MinQty, spec.MaxQty)
		price := int(math.Round(float64(qty) * j.rng.Uniform(spec.MinPriceFactor, spec.MaxPriceFactor)))
		price = max(spec.PriceFloor, price)
		if j.rng() < j.cat.Trade.SellFlip {
			// Trader wants to buy from the player instead.
			price = -price
		}
		j.offers = append(j.offers, TradeOffer{Item: item, Quantity: qty, Price: price})
	}
	j.state.tradeAvailable = true
}

func (j *Journey) clearTradePost() {
	j.offers = nil
	j.state.tradeAvailable = false
}

// validateTrade runs every check a trade can fail on without touching state.
func (j *Journey) validateTrade(index *int) error {
	if index == nil || !j.state.tradeAvailable || len(j.offers) == 0 {
		return nil
	}
	i := *index
	if i < 0 || i >= len(j.offers) {
		return fmt.Errorf("%w: trade offer %d", ErrInvalidSelection, i+1)
	}
	offer := j.offers[i]
	held, err := j.state.resource(offer.Item)
	if err != nil {
		return err
	}
	if offer.Price > 0 {
		if j.state.Money < offer.Price {
			return fmt.Errorf("%w for that trade", ErrInsufficientFunds)
		}
		return nil
	}
	if held < offer.Quantity {
		return fmt.Errorf("%w for that trade", ErrInsufficientGoods)
	}
	return nil
}

// applyTrade resolves a pre-validated trade action. A nil index declines.
// Whatever branch is taken, the post closes for the day, so at most one
// trade completes per day and the offer list never outlives the flag.
func (j *Journey) applyTrade(index *int) string {
	if !j.state.tradeAvailable || len(j.offers) == 0 {
		return "There is no trading post available today."
	}
	if index == nil {
		j.clearTradePost()
		return "You browse the trading post but decide not to trade."
	}
	offer := j.offers[*index]
	var msg string
	if offer.Price > 0 {
		j.state.Money -= offer.Price
		_ = j.state.addResource(offer.Item, offer.Quantity)
		msg = fmt.Sprintf("You buy %d %s for $%d.", offer.Quantity, offer.Item, offer.Price)
	} else {
		_ = j.state.addResource(offer.Item, -offer.Quantity)
		j.state.Money += -offer.Price
		msg = fmt.Sprintf("You sell %d %s for $%d.", offer.Quantity, offer.Item, -offer.Price)
	}
	j.clearTradePost()
	return msg
}
