package services

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/example/vulcan/internal/models"
)

// Mailer delivers transactional email over SMTP. Delivery is best-effort:
// failures are logged and never bubble into the business operation that
// triggered them.
type Mailer struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
}

// NewMailer creates a Mailer. With an empty host the mailer logs and drops
// every message, which keeps local development working without SMTP.
func NewMailer(host string, port int, username, password, from, adminEmail string) *Mailer {
	return &Mailer{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		adminEmail: adminEmail,
	}
}

// Send delivers one HTML email.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	if m.host == "" {
		log.Printf("[Mail] SMTP not configured, dropping %q to %s", subject, to)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("[Mail] failed to send %q to %s: %v", subject, to, err)
		return err
	}
	return nil
}

// SendOTP emails a verification code.
func (m *Mailer) SendOTP(email, code string) error {
	body := fmt.Sprintf(
		"<p>Your Vulcan verification code is <b>%s</b>.</p><p>It expires in 10 minutes.</p>",
		code,
	)
	return m.Send(email, "Your verification code", body)
}

// SendOrderConfirmation emails the customer their order summary.
func (m *Mailer) SendOrderConfirmation(order models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thank you for your order, %s!</h2>", order.CustomerName)
	fmt.Fprintf(&b, "<p>Order <b>%s</b> has been placed.</p>", order.OrderNumber)
	fmt.Fprintf(&b, "<p>%s x %d @ %s</p>", order.ProductName, order.Quantity, FormatINR(order.UnitPrice))
	fmt.Fprintf(&b, "<p>Subtotal: %s<br>", FormatINR(order.TotalPrice))
	fmt.Fprintf(&b, "GST (18%%): %s<br>", FormatINR(order.GSTAmount))
	fmt.Fprintf(&b, "Shipping: %s<br>", FormatINR(order.ShippingFee))
	if order.Discount > 0 {
		fmt.Fprintf(&b, "Discount (%s): -%s<br>", order.CouponCode, FormatINR(order.Discount))
	}
	fmt.Fprintf(&b, "<b>Total payable: %s</b></p>", FormatINR(order.FinalPrice))
	if order.PaymentMethod != models.PaymentMethodPrepaid {
		fmt.Fprintf(&b, "<p>COD handling charge: %s</p>", FormatINR(order.PostpaidCharges))
	}

	return m.Send(order.CustomerEmail, fmt.Sprintf("Order %s confirmed", order.OrderNumber), b.String())
}

// SendAdminOrderAlert notifies the admin inbox about a new order.
func (m *Mailer) SendAdminOrderAlert(order models.Order) error {
	if m.adminEmail == "" {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h3>New order %s</h3>", order.OrderNumber)
	fmt.Fprintf(&b, "<p>%s &lt;%s&gt; / %s</p>", order.CustomerName, order.CustomerEmail, order.CustomerPhone)
	fmt.Fprintf(&b, "<p>%s x %d — %s (%s)</p>", order.ProductName, order.Quantity, FormatINR(order.FinalPrice), order.PaymentMethod)
	fmt.Fprintf(&b, "<p>%s, %s, %s %s</p>", order.ShippingAddress, order.ShippingCity, order.ShippingState, order.ShippingPincode)
	if order.PostpaidCharges > 0 {
		fmt.Fprintf(&b, "<p>Postpaid charges: %s</p>", FormatINR(order.PostpaidCharges))
	}

	return m.Send(m.adminEmail, fmt.Sprintf("New order %s", order.OrderNumber), b.String())
}

// SendPaymentReceived notifies the admin inbox about a captured payment.
func (m *Mailer) SendPaymentReceived(order models.Order, amount float64) error {
	if m.adminEmail == "" {
		return nil
	}
	body := fmt.Sprintf(
		"<p>Payment of <b>%s</b> received for order <b>%s</b> (%s).</p>",
		FormatINR(amount), order.OrderNumber, order.CustomerEmail,
	)
	return m.Send(m.adminEmail, fmt.Sprintf("Payment received for %s", order.OrderNumber), body)
}

// FormatINR renders an amount in rupees with Indian digit grouping
// (12,34,567).
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	paise := int64((amount-float64(whole))*100 + 0.5)

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	// last group of three, then groups of two
	if len(digits) > 3 {
		groups = append(groups, digits[len(digits)-3:])
		digits = digits[:len(digits)-3]
		for len(digits) > 2 {
			groups = append(groups, digits[len(digits)-2:])
			digits = digits[:len(digits)-2]
		}
	}
	groups = append(groups, digits)

	// reverse
	var sb strings.Builder
	if neg {
		sb.WriteString("-")
	}
	sb.WriteString("Rs. ")
	for i := len(groups) - 1; i >= 0; i-- {
		sb.WriteString(groups[i])
		if i > 0 {
			sb.WriteString(",")
		}
	}
	if paise > 0 {
		fmt.Fprintf(&sb, ".%02d", paise)
	}
	return sb.String()
}
