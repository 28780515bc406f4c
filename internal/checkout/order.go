package checkout

import (
	"math"
	"strconv"
	"strings"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/cart"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/format"
)

// OrderLine is a cart line resolved against the catalog.
type OrderLine struct {
	Product  catalog.Product
	Qty      int
	Subtotal int64
}

// Text renders the line as it appears in the order message.
func (l OrderLine) Text(money format.Money) string {
	var b strings.Builder
	b.WriteString("• ")
	b.WriteString(l.Product.Name)
	b.WriteString(" x")
	b.WriteString(strconv.Itoa(l.Qty))
	b.WriteString(" — ")
	b.WriteString(money.Format(l.Subtotal))
	return b.String()
}

// Summary is the resolved view of a cart.
type Summary struct {
	Lines []OrderLine
	Total int64
	// Count is the sum of quantities over every stored line, stale ones included.
	Count int
	// Stored is the number of stored lines before resolution.
	Stored int
}

// Empty reports whether the shopper has nothing in the cart.
func (s Summary) Empty() bool { return s.Stored == 0 }

// Resolve joins cart lines with catalog products. Lines whose product no longer exists
// are dropped from the result and the total.
func Resolve(lines []cart.Line, cat *catalog.Catalog) Summary {
	s := Summary{
		Lines:  make([]OrderLine, 0, len(lines)),
		Stored: len(lines),
	}
	for _, l := range lines {
		s.Count = int(addAmount(int64(s.Count), int64(l.Qty), math.MaxInt))
		p, ok := cat.Product(l.ID)
		if !ok {
			continue
		}
		sub := mulAmount(p.Price, int64(l.Qty))
		s.Lines = append(s.Lines, OrderLine{Product: p, Qty: l.Qty, Subtotal: sub})
		s.Total = addAmount(s.Total, sub, math.MaxInt64)
	}
	return s
}

// mulAmount multiplies a price by a quantity, saturating instead of wrapping.
func mulAmount(price, qty int64) int64 {
	if price == 0 || qty == 0 {
		return 0
	}
	out := price * qty
	if out/qty != price || (qty == -1 && price == math.MinInt64) {
		if (price < 0) != (qty < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return out
}

// addAmount adds b to a, pinning the result to [-limit-1, limit].
func addAmount(a, b, limit int64) int64 {
	switch {
	case b > 0 && a > limit-b:
		return limit
	case b < 0 && a < -limit-1-b:
		return -limit - 1
	}
	return a + b
}

// OrderBlock joins the line texts with newlines.
func OrderBlock(s Summary, money format.Money) string {
	texts := make([]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		texts = append(texts, l.Text(money))
	}
	return strings.Join(texts, "\n")
}
