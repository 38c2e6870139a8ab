package mapper

import (
	"time"

	orderingdomain "github.com/delicias-da-thai/storefront/internal/domains/ordering/domain"
)

// Line is the transport-layer shape of a cart line.
type Line struct {
	ItemID      string `json:"itemId"`
	Name        string `json:"name"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
	MadeToOrder bool   `json:"madeToOrder"`
}

// Customer is the transport-layer shape of the buyer details.
type Customer struct {
	Name        string     `json:"name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	ZoneID      string     `json:"zoneId,omitempty"`
	ZoneName    string     `json:"zoneName,omitempty"`
	DeliveryFee string     `json:"deliveryFee"`
	Notes       string     `json:"notes,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// Cart is the transport-layer shape of the order in progress.
type Cart struct {
	Lines           []Line   `json:"lines"`
	Mode            string   `json:"mode"`
	DeliveryEnabled bool     `json:"deliveryEnabled"`
	Customer        Customer `json:"customer"`
	Subtotal        string   `json:"subtotal"`
	Total           string   `json:"total"`
}

// FromDomainCart converts the cart aggregate to its transport representation.
func FromDomainCart(cart *orderingdomain.Cart) Cart {
	if cart == nil {
		return Cart{Lines: []Line{}}
	}
	domainLines := cart.Lines()
	lines := make([]Line, 0, len(domainLines))
	for _, l := range domainLines {
		lines = append(lines, Line{
			ItemID:      l.Item.ID,
			Name:        l.Item.Name,
			UnitPrice:   l.Item.UnitPrice.StringFixed(2),
			Quantity:    l.Quantity,
			Total:       l.Total().StringFixed(2),
			MadeToOrder: l.Item.MadeToOrder(),
		})
	}
	customer := cart.Customer()
	return Cart{
		Lines:           lines,
		Mode:            string(cart.Mode()),
		DeliveryEnabled: cart.DeliveryEnabled(),
		Customer: Customer{
			Name:        customer.Name,
			Phone:       customer.Phone,
			Address:     customer.Address,
			ZoneID:      customer.ZoneID,
			ZoneName:    customer.ZoneName,
			DeliveryFee: customer.DeliveryFee.StringFixed(2),
			Notes:       customer.Notes,
			ScheduledAt: customer.ScheduledAt,
		},
		Subtotal: cart.Subtotal().StringFixed(2),
		Total:    cart.GrandTotal().StringFixed(2),
	}
}

// SubmittedOrder is the transport-layer shape of an archived order.
type SubmittedOrder struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Mode         string     `json:"mode"`
	Subtotal     string     `json:"subtotal"`
	DeliveryFee  string     `json:"deliveryFee"`
	Total        string     `json:"total"`
	ZoneName     string     `json:"zoneName,omitempty"`
	ScheduledAt  *time.Time `json:"scheduledAt,omitempty"`
	Message      string     `json:"message"`
	SubmittedAt  time.Time  `json:"submittedAt"`
}

// FromDomainOrder converts an archived order to its transport representation.
func FromDomainOrder(order *orderingdomain.SubmittedOrder) SubmittedOrder {
	if order == nil {
		return SubmittedOrder{}
	}
	return SubmittedOrder{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Mode:         string(order.Mode),
		Subtotal:     order.Subtotal.StringFixed(2),
		DeliveryFee:  order.DeliveryFee.StringFixed(2),
		Total:        order.Total.StringFixed(2),
		ZoneName:     order.ZoneName,
		ScheduledAt:  order.ScheduledAt,
		Message:      order.Message,
		SubmittedAt:  order.SubmittedAt,
	}
}
