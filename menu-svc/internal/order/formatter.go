// Package order renders a cart into the message handed to external
// channels.
package order

import (
	"strconv"
	"strings"

	"tatini-menu/menu-svc/internal/cart"
	"tatini-menu/menu-svc/internal/domain"
)

const whatsAppBaseURL = "https://wa.me/"

// FormatText renders the human-readable order message. The output depends
// only on its arguments.
func FormatText(table int, lines []domain.CartLine, orderNote string) string {
	var b strings.Builder

	b.WriteString("🪑 Table ")
	b.WriteString(strconv.Itoa(table))
	b.WriteString("\n\n🧾 Order:\n")

	for _, l := range lines {
		b.WriteString("• ")
		b.WriteString(l.Name)
		b.WriteString(" x")
		b.WriteString(strconv.Itoa(l.Quantity))
		b.WriteString(" — ₹")
		b.WriteString(l.Subtotal().String())
		b.WriteString("\n")
		if l.Note != "" {
			b.WriteString("  ↳ Note: ")
			b.WriteString(l.Note)
			b.WriteString("\n")
		}
	}

	if orderNote != "" {
		b.WriteString("\n📝 Order Note:\n")
		b.WriteString(orderNote)
		b.WriteString("\n")
	}

	b.WriteString("\n💰 Estimated Total: ₹")
	b.WriteString(cart.TotalAmount(lines).String())

	return b.String()
}

// FormatOrder is FormatText percent-encoded for use as a query value.
func FormatOrder(table int, lines []domain.CartLine, orderNote string) string {
	return EncodeComponent(FormatText(table, lines, orderNote))
}

// WhatsAppLink builds the deep link that opens a chat with phone and the
// already-encoded text prefilled.
func WhatsAppLink(phone, encodedText string) string {
	return whatsAppBaseURL + phone + "?text=" + encodedText
}

const upperHex = "0123456789ABCDEF"

// EncodeComponent escapes s the way browsers' encodeURIComponent does:
// letters, digits and -_.!~*'() pass through, every other byte of the
// UTF-8 encoding becomes %XX.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
