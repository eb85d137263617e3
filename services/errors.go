package services

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP status codes.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrPersistFailed        = errors.New("order could not be saved")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

type CategoryNotFoundError struct {
	ID uint
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %d not found", e.ID)
}

func (e *CategoryNotFoundError) Is(target error) bool { return target == ErrNotFound }

type MenuItemNotFoundError struct {
	ID uint
}

func (e *MenuItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item %d not found", e.ID)
}

func (e *MenuItemNotFoundError) Is(target error) bool { return target == ErrNotFound }

// OptionNotFoundError is also returned when the option exists but belongs to
// another option type than the menu item allows.
type OptionNotFoundError struct {
	ID uint
}

func (e *OptionNotFoundError) Error() string {
	return fmt.Sprintf("option %d not found", e.ID)
}

func (e *OptionNotFoundError) Is(target error) bool { return target == ErrNotFound }

type OrderNotFoundError struct {
	ID uint
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %d not found", e.ID)
}

func (e *OrderNotFoundError) Is(target error) bool { return target == ErrNotFound }

type InvalidOptionTypeError struct {
	Type string
}

func (e *InvalidOptionTypeError) Error() string {
	return fmt.Sprintf("invalid option type %q: expected donkatsu or set_meal", e.Type)
}

func (e *InvalidOptionTypeError) Is(target error) bool { return target == ErrInvalidArgument }

type InvalidQuantityError struct {
	Field    string
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s quantity must be between 1 and %d, got %d", e.Field, MaxQuantity, e.Quantity)
}

func (e *InvalidQuantityError) Is(target error) bool { return target == ErrInvalidArgument }

// AmountOverflowError means a line or order total does not fit in an int.
type AmountOverflowError struct {
	MenuItemID uint
}

func (e *AmountOverflowError) Error() string {
	return fmt.Sprintf("order total out of range at menu item %d", e.MenuItemID)
}

func (e *AmountOverflowError) Is(target error) bool { return target == ErrInvalidArgument }

// PersistError wraps a storage failure while saving an order. The order was rolled back.
type PersistError struct {
	OrderNumber string
	Err         error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("save order %s: %v", e.OrderNumber, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

func (e *PersistError) Is(target error) bool { return target == ErrPersistFailed }
