package order

import (
	"net/url"
	"strings"
	"testing"

	"tatini-menu/menu-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crispyCorn(qty int) domain.CartLine {
	return domain.CartLine{ID: "cc", Name: "Crispy Corn", Price: decimal.NewFromInt(280), Quantity: qty}
}

func TestFormatText(t *testing.T) {
	tests := []struct {
		name  string
		table int
		lines []domain.CartLine
		note  string
		want  string
	}{
		{
			name:  "single line no notes",
			table: 4,
			lines: []domain.CartLine{crispyCorn(2)},
			want:  "🪑 Table 4\n\n🧾 Order:\n• Crispy Corn x2 — ₹560\n\n💰 Estimated Total: ₹560",
		},
		{
			name:  "line note",
			table: 7,
			lines: []domain.CartLine{
				{ID: "cc", Name: "Crispy Corn", Price: decimal.NewFromInt(280), Quantity: 1, Note: "less salt"},
				{ID: "vm", Name: "Virgin Mojito", Price: decimal.NewFromInt(220), Quantity: 3},
			},
			want: "🪑 Table 7\n\n🧾 Order:\n" +
				"• Crispy Corn x1 — ₹280\n  ↳ Note: less salt\n" +
				"• Virgin Mojito x3 — ₹660\n" +
				"\n💰 Estimated Total: ₹940",
		},
		{
			name:  "order note",
			table: 15,
			lines: []domain.CartLine{crispyCorn(1)},
			note:  "birthday table",
			want: "🪑 Table 15\n\n🧾 Order:\n• Crispy Corn x1 — ₹280\n" +
				"\n📝 Order Note:\nbirthday table\n" +
				"\n💰 Estimated Total: ₹280",
		},
		{
			name:  "fractional prices",
			table: 1,
			lines: []domain.CartLine{{ID: "x", Name: "Tea", Price: decimal.RequireFromString("12.25"), Quantity: 2}},
			want:  "🪑 Table 1\n\n🧾 Order:\n• Tea x2 — ₹24.5\n\n💰 Estimated Total: ₹24.5",
		},
		{
			name:  "empty cart",
			table: 2,
			want:  "🪑 Table 2\n\n🧾 Order:\n\n💰 Estimated Total: ₹0",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, FormatText(testCase.table, testCase.lines, testCase.note))
		})
	}
}

func TestFormatOrder_CrispyCornScenario(t *testing.T) {
	encoded := FormatOrder(4, []domain.CartLine{crispyCorn(2)}, "")

	decoded, err := url.PathUnescape(encoded)
	require.NoError(t, err)

	assert.Contains(t, decoded, "Table 4")
	assert.Contains(t, decoded, "Crispy Corn x2")
	assert.Contains(t, decoded, "₹560\n")
	assert.True(t, strings.HasSuffix(decoded, "Estimated Total: ₹560"))
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "\n")
}

func TestFormatOrder_Deterministic(t *testing.T) {
	lines := []domain.CartLine{
		crispyCorn(2),
		{ID: "tc-mint", Name: "Mint Dip", Price: decimal.NewFromInt(30), Quantity: 1, Note: "on the side", IsAddon: true},
	}

	first := FormatOrder(9, lines, "no onions & garlic")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, FormatOrder(9, lines, "no onions & garlic"))
	}
}

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "abcXYZ019", want: "abcXYZ019"},
		{in: "-_.!~*'()", want: "-_.!~*'()"},
		{in: "a b", want: "a%20b"},
		{in: "a+b&c=d/e?f#g", want: "a%2Bb%26c%3Dd%2Fe%3Ff%23g"},
		{in: "line\nbreak", want: "line%0Abreak"},
		{in: "₹", want: "%E2%82%B9"},
		{in: "🪑", want: "%F0%9F%AA%91"},
	}

	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			got := EncodeComponent(testCase.in)
			assert.Equal(t, testCase.want, got)

			back, err := url.PathUnescape(got)
			require.NoError(t, err)
			assert.Equal(t, testCase.in, back)
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("917420096566", "hello%20there")
	assert.Equal(t, "https://wa.me/917420096566?text=hello%20there", link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hello there", parsed.Query().Get("text"))
}
