package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/delicias-da-thai/storefront/internal/shared/money"
)

const messageSeparator = "------------------------------"
const messageBorder = "=============================="

// scheduledLayout renders day/month and 24h clock, the convention the store's
// WhatsApp operators read.
const scheduledLayout = "02/01 15:04"

// MessageComposer turns a validated cart into the outbound WhatsApp order
// message. Compose is deterministic and total: it never fails on a cart that
// passed ValidateCheckout and never reorders lines.
type MessageComposer struct {
	StoreName  string
	StorePhone string
}

// Compose renders the order as the structured text block sent to the store.
func (m MessageComposer) Compose(cart *Cart) string {
	customer := cart.Customer()
	var b strings.Builder

	fmt.Fprintf(&b, "*NOVO PEDIDO - %s*\n", strings.ToUpper(m.StoreName))
	b.WriteString(messageBorder + "\n\n")

	fmt.Fprintf(&b, "*CLIENTE:* %s\n", strings.ToUpper(strings.TrimSpace(customer.Name)))
	if cart.Mode() == ModeDelivery {
		b.WriteString("*MÉTODO:* ENTREGA\n")
	} else {
		b.WriteString("*MÉTODO:* RETIRADA NA LOJA\n")
	}
	if customer.ScheduledAt != nil {
		fmt.Fprintf(&b, "*AGENDADO PARA:* %s\n", customer.ScheduledAt.Format(scheduledLayout))
	} else {
		b.WriteString("*PEDIDO PARA:* AGORA (IMEDIATO)\n")
	}

	b.WriteString("\n" + messageSeparator + "\n")
	b.WriteString("*ITENS DO PEDIDO:*\n")
	for _, line := range cart.Lines() {
		tag := "[PRONTA-ENTREGA]"
		if line.Item.MadeToOrder() {
			tag = "[ENCOMENDA]"
		}
		fmt.Fprintf(&b, "> *%dx %s*\n", line.Quantity, line.Item.Name)
		fmt.Fprintf(&b, "  %s - %s\n\n", tag, money.Format(line.Total()))
	}

	b.WriteString(messageSeparator + "\n")
	fmt.Fprintf(&b, "*Subtotal:* %s\n", money.Format(cart.Subtotal()))

	if cart.Mode() == ModeDelivery {
		fmt.Fprintf(&b, "*Taxa de Entrega:* %s\n", money.Format(customer.DeliveryFee))
		fmt.Fprintf(&b, "*Bairro:* %s\n", customer.ZoneName)
		fmt.Fprintf(&b, "*Endereço:* %s\n", customer.Address)
	}

	if strings.TrimSpace(customer.Notes) != "" {
		fmt.Fprintf(&b, "\n*OBSERVAÇÕES:* %s\n", customer.Notes)
	}

	fmt.Fprintf(&b, "\n*TOTAL A PAGAR: %s*\n", money.Format(cart.GrandTotal()))
	b.WriteString(messageBorder + "\n")
	b.WriteString("_Aguardo a confirmação do pedido!_")

	return b.String()
}

// WhatsAppLink wraps the composed message in a wa.me prefilled link. The
// transport itself (opening the link) is outside the core's responsibility.
func (m MessageComposer) WhatsAppLink(message string) string {
	query := url.Values{}
	query.Set("text", message)
	return fmt.Sprintf("https://wa.me/%s?%s", m.StorePhone, query.Encode())
}
