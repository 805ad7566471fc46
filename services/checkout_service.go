package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"orderweb/entity"
	"orderweb/gateway"
	"orderweb/repository"
	"orderweb/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderTypeDisabled = errors.New("order type is not available for this restaurant")
	ErrRestaurantClosed  = errors.New("restaurant is closed")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrScheduleRequired  = errors.New("advance orders require a future date and time")
	ErrAddressRequired   = errors.New("delivery orders require an address and postcode")
	ErrCardRequired      = errors.New("card details are required for card payment")
)

// PaymentError is a declined or failed charge; the submission is terminal
// and nothing was persisted.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string { return "payment failed: " + e.Message }

// ConfirmationSender is satisfied by notifier.Mailer.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, setting *entity.EmailSetting, order *entity.Order) error
}

type CheckoutService struct {
	DB         *gorm.DB
	Orders     *repository.OrderRepository
	Carts      *repository.CartRepository
	Settings   *repository.SettingsRepository
	Vouchers   *VoucherService
	Delivery   *DeliveryService
	GiftCards  *GiftCardService
	Dispatcher *gateway.Dispatcher

	// optional side effects, both best effort
	Mailer ConfirmationSender
	Feed   *ws.OrderHub
}

func NewCheckoutService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	carts *repository.CartRepository,
	settings *repository.SettingsRepository,
	vouchers *VoucherService,
	delivery *DeliveryService,
	giftCards *GiftCardService,
	dispatcher *gateway.Dispatcher,
	mailer ConfirmationSender,
	feed *ws.OrderHub,
) *CheckoutService {
	return &CheckoutService{
		DB: db, Orders: orders, Carts: carts, Settings: settings,
		Vouchers: vouchers, Delivery: delivery, GiftCards: giftCards,
		Dispatcher: dispatcher, Mailer: mailer, Feed: feed,
	}
}

type CardIn struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"` // MM/YY
	CVV        string `json:"cvv"`
	HolderName string `json:"holderName"`
}

type PlaceOrderIn struct {
	OrderType   string     `json:"orderType" binding:"required,oneof=delivery collection advance"`
	ScheduledAt *time.Time `json:"scheduledAt"`

	CustomerName string `json:"customerName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Address      string `json:"address"`
	Postcode     string `json:"postcode"`

	VoucherCode  string `json:"voucherCode"`
	GiftCardCode string `json:"giftCardCode"`

	PaymentMethod string  `json:"paymentMethod" binding:"required,oneof=card cash"`
	Card          *CardIn `json:"card"`
}

type PlaceOrderOut struct {
	OrderID      uint       `json:"orderId"`
	OrderNumber  string     `json:"orderNumber"`
	OrderType    string     `json:"orderType"`
	CustomerName string     `json:"customerName"`
	ScheduledAt  *time.Time `json:"scheduledAt,omitempty"`
	Totals       Totals     `json:"totals"`

	GiftCardCredit int64 `json:"giftCardCredit,omitempty"`
	AmountDue      int64 `json:"amountDue"` // total - giftCardCredit
}

// PlaceOrder runs the whole checkout pipeline as one sequential pass:
// validate -> delivery fee -> voucher -> charge (card) -> create order ->
// best-effort side effects. Any validation or payment failure is terminal
// for the attempt and persists nothing.
//
// There is no compensation if the card charge succeeds and the order insert
// then fails; the gateway transaction id is logged for manual
// reconciliation.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, tenant *entity.Tenant, in *PlaceOrderIn) (*PlaceOrderOut, error) {
	if err := s.checkOrderType(tenant, in); err != nil {
		return nil, err
	}

	cart, err := s.Carts.GetCartWithItems(userID, tenant.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	subtotal := CartSubtotal(cart.Items)

	var deliveryFee int64
	if in.OrderType == entity.OrderTypeDelivery {
		if strings.TrimSpace(in.Address) == "" || strings.TrimSpace(in.Postcode) == "" {
			return nil, ErrAddressRequired
		}
		deliveryFee, err = s.Delivery.Resolve(tenant.ID, in.Postcode, subtotal)
		if err != nil {
			return nil, err
		}
	}

	var voucher *entity.Voucher
	var discount int64
	if code := strings.TrimSpace(in.VoucherCode); code != "" {
		voucher, discount, err = s.Vouchers.Validate(tenant.ID, code, subtotal)
		if err != nil {
			return nil, err
		}
	}

	totals := ComputeTotals(subtotal, tenant.TaxRateBP, deliveryFee, discount)
	orderNumber := newOrderNumber()

	// gift-card credit comes off the amount due, not the order totals
	var giftCard *entity.GiftCard
	var credit int64
	if code := strings.TrimSpace(in.GiftCardCode); code != "" {
		giftCard, err = s.GiftCards.Check(tenant.ID, code)
		if err != nil {
			return nil, err
		}
		credit = giftCard.Balance
		if credit > totals.Total {
			credit = totals.Total
		}
	}
	amountDue := totals.Total - credit

	var payRes *gateway.Result
	var gatewayName string
	if in.PaymentMethod == "card" && amountDue > 0 {
		if in.Card == nil {
			return nil, ErrCardRequired
		}
		gwCfg, err := s.Settings.GetGateway(tenant.ID)
		if err != nil {
			return nil, err
		}
		payReq := &gateway.Request{
			Reference:    orderNumber,
			Amount:       amountDue,
			Currency:     strings.ToLower(tenant.Currency),
			CustomerName: in.CustomerName,
			Card: gateway.Card{
				Number:     in.Card.Number,
				Expiry:     in.Card.Expiry,
				CVV:        in.Card.CVV,
				HolderName: in.Card.HolderName,
			},
		}
		payRes, err = s.Dispatcher.Dispatch(ctx, gwCfg, payReq)
		if err != nil {
			return nil, err
		}
		if !payRes.Success {
			return nil, &PaymentError{Message: payRes.Message}
		}
		gatewayName = enabledGatewayName(gwCfg)
	}

	order := entity.Order{
		OrderNumber:  orderNumber,
		OrderType:    in.OrderType,
		Status:       entity.OrderStatusPending,
		ScheduledAt:  in.ScheduledAt,
		CustomerName: strings.TrimSpace(in.CustomerName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Address:      strings.TrimSpace(in.Address),
		Postcode:     NormalizePostcode(in.Postcode),
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		DeliveryFee:  totals.DeliveryFee,
		Discount:     totals.Discount,
		Total:        totals.Total,
		PaymentMethod: in.PaymentMethod,
		UserID:       userID,
		TenantID:     tenant.ID,
	}
	if voucher != nil {
		order.VoucherID = &voucher.ID
		order.VoucherCode = voucher.Code
	}
	if giftCard != nil {
		order.GiftCardCode = giftCard.Code
		order.GiftCardCredit = credit
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orders.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Name:       it.MenuItem.Name,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
				Total:      it.Total,
				Note:       it.Note,
			}
			for _, a := range it.Addons {
				oi.Addons = append(oi.Addons, entity.OrderItemAddon{
					AddonID: a.AddonID, Name: a.Name, Price: a.Price,
				})
			}
			if err := s.Orders.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if giftCard != nil {
			if err := s.GiftCards.Apply(tx, giftCard.ID, credit); err != nil {
				return err
			}
		}

		p := entity.Payment{
			Amount:  amountDue,
			Method:  in.PaymentMethod,
			OrderID: order.ID,
			Status:  entity.PaymentStatusPending,
		}
		if payRes != nil {
			now := time.Now()
			p.Gateway = gatewayName
			p.Reference = orderNumber
			p.TransactionID = payRes.TransactionID
			p.Status = entity.PaymentStatusCaptured
			p.PaidAt = &now
		} else if amountDue == 0 && credit > 0 {
			// gift card covered the whole order
			now := time.Now()
			p.Status = entity.PaymentStatusCaptured
			p.PaidAt = &now
		}
		if err := s.Orders.CreatePayment(tx, &p); err != nil {
			return err
		}

		return s.Carts.ClearCart(tx, userID, tenant.ID)
	})
	if err != nil {
		if payRes != nil {
			// charge went through but the order did not; needs manual
			// reconciliation against the gateway
			log.Printf("ERROR: charge %s (ref %s) succeeded but order creation failed: %v",
				payRes.TransactionID, orderNumber, err)
		}
		return nil, err
	}

	s.afterPlaced(ctx, tenant, voucher, &order)

	return &PlaceOrderOut{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		OrderType:      order.OrderType,
		CustomerName:   order.CustomerName,
		ScheduledAt:    order.ScheduledAt,
		Totals:         totals,
		GiftCardCredit: credit,
		AmountDue:      amountDue,
	}, nil
}

func (s *CheckoutService) checkOrderType(tenant *entity.Tenant, in *PlaceOrderIn) error {
	switch in.OrderType {
	case entity.OrderTypeDelivery:
		if !tenant.DeliveryEnabled {
			return ErrOrderTypeDisabled
		}
	case entity.OrderTypeCollection:
		if !tenant.CollectionEnabled {
			return ErrOrderTypeDisabled
		}
	case entity.OrderTypeAdvance:
		if !tenant.AdvanceEnabled {
			return ErrOrderTypeDisabled
		}
		if in.ScheduledAt == nil || !in.ScheduledAt.After(time.Now()) {
			return ErrScheduleRequired
		}
		return nil // advance orders skip the opening-hours gate
	}

	hours, err := s.Settings.ListHours(tenant.ID)
	if err != nil {
		return err
	}
	if st := HoursStatus(hours, time.Now()); !st.IsOpen {
		return fmt.Errorf("%w: %s", ErrRestaurantClosed, st.Message)
	}
	return nil
}

// afterPlaced runs the best-effort side effects. None of them can fail the
// already-placed order.
func (s *CheckoutService) afterPlaced(ctx context.Context, tenant *entity.Tenant, voucher *entity.Voucher, order *entity.Order) {
	if voucher != nil {
		s.Vouchers.MarkUsed(tenant.ID, voucher.ID)
	}

	if s.Mailer != nil {
		emailCfg, err := s.Settings.GetEmail(tenant.ID)
		if err != nil {
			log.Printf("loading email settings for tenant %d failed: %v", tenant.ID, err)
		} else if err := s.Mailer.SendOrderConfirmation(ctx, emailCfg, order); err != nil {
			log.Printf("confirmation mail for %s failed: %v", order.OrderNumber, err)
		}
	}

	if s.Feed != nil {
		s.Feed.Broadcast(tenant.ID, ws.OrderEvent{
			Type:         "order.created",
			OrderID:      order.ID,
			OrderNumber:  order.OrderNumber,
			OrderType:    order.OrderType,
			Status:       order.Status,
			Total:        order.Total,
			CustomerName: order.CustomerName,
		})
	}
}

func newOrderNumber() string {
	return "OW-" + strings.ToUpper(uuid.NewString()[:8])
}

func enabledGatewayName(cfg *entity.GatewaySetting) string {
	switch {
	case cfg == nil:
		return ""
	case cfg.StripeEnabled:
		return "stripe"
	case cfg.GlobalPaymentsEnabled:
		return "globalpayments"
	case cfg.WorldpayEnabled:
		return "worldpay"
	default:
		return ""
	}
}
