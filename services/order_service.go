package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/voiceorder/menu-api/metrics"
	"github.com/voiceorder/menu-api/models"
	"github.com/voiceorder/menu-api/utils"
)

const defaultOrderNumberAttempts = 3

// OrderPublisher is notified after an order commits.
type OrderPublisher interface {
	PublishOrderPlaced(summary models.OrderSummary)
}

type OrderService struct {
	catalog   CatalogReader
	repo      *OrderRepository
	publisher OrderPublisher

	newOrderNumber func(time.Time) string
	now            func() time.Time
	maxAttempts    int
}

// NewOrderService wires pricing and persistence. publisher may be nil.
func NewOrderService(catalog CatalogReader, repo *OrderRepository, publisher OrderPublisher) *OrderService {
	return &OrderService{
		catalog:        catalog,
		repo:           repo,
		publisher:      publisher,
		newOrderNumber: GenerateOrderNumber,
		now:            time.Now,
		maxAttempts:    defaultOrderNumberAttempts,
	}
}

// GenerateOrderNumber returns ORD-<yyyymmddHHMMSS>-<8 random hex chars>.
func GenerateOrderNumber(t time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", t.Format("20060102150405"), uuid.NewString()[:8])
}

// PlaceOrder prices the cart and saves it. Nothing is written unless every
// menu item and option in the cart resolves.
func (s *OrderService) PlaceOrder(ctx context.Context, lines []CartLine) (*models.OrderSummary, error) {
	breakdown, err := PriceCart(ctx, s.catalog, lines)
	if err != nil {
		metrics.RecordOrderFailure(failureReason(err))
		return nil, err
	}

	var order *models.Order
	for attempt := 1; ; attempt++ {
		orderNumber := s.newOrderNumber(s.now())

		order, err = s.repo.SaveOrder(ctx, orderNumber, breakdown)
		if err == nil {
			break
		}

		if errors.Is(err, ErrDuplicateOrderNumber) && attempt < s.maxAttempts {
			utils.InfoLogger.WithFields(logrus.Fields{
				"order_number": orderNumber,
				"attempt":      attempt,
			}).Warn("order number collision, retrying")
			continue
		}

		if errors.Is(err, ErrDuplicateOrderNumber) {
			err = &PersistError{OrderNumber: orderNumber, Err: err}
		}
		metrics.RecordOrderFailure(failureReason(err))
		utils.ErrorLogger.WithFields(logrus.Fields{
			"order_number": orderNumber,
			"attempt":      attempt,
			"error":        err,
		}).Error("failed to save order")
		return nil, err
	}

	summary := order.Summary()
	metrics.RecordOrderPlaced(summary.TotalAmount)
	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":     summary.ID,
		"order_number": summary.OrderNumber,
		"items":        len(breakdown.Lines),
	}).Infof("order placed, total %s", utils.FormatWon(summary.TotalAmount))

	if s.publisher != nil {
		s.publisher.PublishOrderPlaced(summary)
	}

	return &summary, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.repo.FindOrder(ctx, id)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return metrics.ReasonNotFound
	case errors.Is(err, ErrInvalidArgument):
		return metrics.ReasonInvalidArgument
	case errors.Is(err, ErrDuplicateOrderNumber):
		return metrics.ReasonDuplicateNumber
	default:
		return metrics.ReasonPersist
	}
}
