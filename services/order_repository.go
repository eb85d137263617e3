package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/voiceorder/menu-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository writes the order, order_items and order_item_options rows.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, orderNumber string, totalAmount int) (*models.Order, error) {
	order := models.Order{
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
	}
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) AddOrderItem(ctx context.Context, orderID, menuItemID uint, quantity, itemPrice, totalPrice int) (uint, error) {
	item := models.OrderItem{
		OrderID:    orderID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		ItemPrice:  itemPrice,
		TotalPrice: totalPrice,
	}
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (r *OrderRepository) AddOrderItemOption(ctx context.Context, orderItemID, optionID uint, quantity, optionPrice int) (uint, error) {
	option := models.OrderItemOption{
		OrderItemID: orderItemID,
		OptionID:    optionID,
		Quantity:    quantity,
		OptionPrice: optionPrice,
	}
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&option).Error; err != nil {
		return 0, err
	}
	return option.ID, nil
}

// SaveOrder writes a priced breakdown in a single transaction. Either every
// row of the order commits or none does.
func (r *OrderRepository) SaveOrder(ctx context.Context, orderNumber string, breakdown *Breakdown) (*models.Order, error) {
	var order *models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &OrderRepository{DB: tx}

		created, err := txRepo.CreateOrder(ctx, orderNumber, breakdown.TotalAmount)
		if err != nil {
			return err
		}

		for _, line := range breakdown.Lines {
			itemID, err := txRepo.AddOrderItem(ctx, created.ID, line.MenuItemID, line.Quantity, line.ItemPrice, line.TotalPrice)
			if err != nil {
				return err
			}
			for _, opt := range line.Options {
				if _, err := txRepo.AddOrderItemOption(ctx, itemID, opt.OptionID, opt.Quantity, opt.OptionPrice); err != nil {
					return err
				}
			}
		}

		order = created
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrderNumber, orderNumber)
		}
		return nil, &PersistError{OrderNumber: orderNumber, Err: err}
	}

	return order, nil
}

// FindOrder loads an order with its items and their options.
func (r *OrderRepository) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Options", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &OrderNotFoundError{ID: id}
		}
		return nil, err
	}
	return &order, nil
}
