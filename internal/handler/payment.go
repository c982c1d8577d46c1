package handler

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/model"
	"github.com/prolearn/course-marketplace/internal/payment"
	"github.com/prolearn/course-marketplace/internal/queue"
	"github.com/prolearn/course-marketplace/internal/repository"
)

// PaymentHandler serves payment-intent creation, payment finalization, and
// payment history. Publish is optional: when set, a successful finalization
// emits a PaymentRecordedEvent, and any publish failure is logged without
// affecting the response.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	Classes  *repository.ClassRepo
	Selected *repository.SelectedRepo
	Intents  payment.IntentCreator
	Publish  func(ctx context.Context, ev queue.PaymentRecordedEvent) error
}

func NewPaymentHandler(payments *repository.PaymentRepo, classes *repository.ClassRepo, selected *repository.SelectedRepo, intents payment.IntentCreator) *PaymentHandler {
	if payments == nil || classes == nil || selected == nil {
		panic("nil repository passed to NewPaymentHandler")
	}
	return &PaymentHandler{Payments: payments, Classes: classes, Selected: selected, Intents: intents}
}

// CreateIntent handles POST /create-payment-intent (authenticated). Any
// authenticated caller may request a client secret for a price; the price
// is forwarded to the provider in minor units.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	amount := int64(math.Round(body.Price * 100))
	secret, err := h.Intents.CreateIntent(c.Request().Context(), amount)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"clientSecret": secret})
}

// Finalize handles POST /payments (authenticated): the one multi-document
// operation in the system. Three dependent mutations run in order with no
// cross-document transaction and no compensating rollback:
//
//  1. insert the payment record (status "recorded"),
//  2. decrement availableSeats on the class referenced by selectedId,
//  3. delete the cart entry referenced by chosenId.
//
// If step 2 or 3 fails the payment record persists and the response names
// the failed step; the workflow status left on the record ("recorded" or
// "seats_adjusted") marks the partially-applied state for later inspection.
// There is no seat floor and no duplicate-submission guard: resubmitting
// the same payment decrements the seat count again.
func (h *PaymentHandler) Finalize(c echo.Context) error {
	var p model.Payment
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	ctx := c.Request().Context()

	p.Status = model.PaymentRecorded
	insertResult, err := h.Payments.Insert(ctx, p)
	if err != nil {
		return internalError(c, err)
	}

	updatedResult, err := h.Classes.DecrementSeats(ctx, p.SelectedID)
	if err != nil {
		log.Printf("seat decrement failed for class %s: %v", p.SelectedID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":      true,
			"message":    "an error occurred while processing your request",
			"failedStep": "seat_update",
		})
	}
	if _, err := h.Payments.SetStatus(ctx, insertResult.InsertedID, model.PaymentSeatsAdjusted); err != nil {
		log.Printf("payment status update failed: %v", err)
	}

	deleteResult, err := h.Selected.Delete(ctx, p.ChosenID)
	if err != nil {
		log.Printf("cart clear failed for item %s: %v", p.ChosenID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":      true,
			"message":    "an error occurred while processing your request",
			"failedStep": "cart_clear",
		})
	}
	if _, err := h.Payments.SetStatus(ctx, insertResult.InsertedID, model.PaymentCompleted); err != nil {
		log.Printf("payment status update failed: %v", err)
	}

	if h.Publish != nil {
		ev := queue.PaymentRecordedEvent{
			PaymentID:  insertResult.InsertedID,
			Email:      p.Email,
			ClassID:    p.SelectedID,
			ClassName:  p.ClassName,
			Price:      p.Price,
			Status:     model.PaymentCompleted,
			RecordedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Publish(ctx, ev); err != nil {
			log.Printf("payment event publish failed: %v", err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"insertResult":  insertResult,
		"updatedResult": updatedResult,
		"deleteResult":  deleteResult,
	})
}

// History handles GET /payments?email= (self only). A missing email
// parameter yields an empty list, not an error.
func (h *PaymentHandler) History(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []model.Payment{})
	}
	if !requireSelf(c, email) {
		return nil
	}
	payments, err := h.Payments.ByEmail(c.Request().Context(), email)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// Popular handles GET /popular: every payment record, which the storefront
// aggregates into its popularity ranking.
func (h *PaymentHandler) Popular(c echo.Context) error {
	payments, err := h.Payments.All(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}
