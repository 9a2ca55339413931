package game

import "errors"

// Error kinds returned by the journey. Callers distinguish them with
// errors.Is; the sites that return them wrap with %w and add context.
var (
	ErrUnknownOption     = errors.New("unknown option")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInsufficientAmmo  = errors.New("not enough ammunition")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrInsufficientGoods = errors.New("not enough goods")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrUnknownResource   = errors.New("unknown resource")
	ErrGameOver          = errors.New("game over")
)
