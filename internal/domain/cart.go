package domain

import "strconv"

// DefaultPlaceholderImage is used for cart lines whose product carries no image
const DefaultPlaceholderImage = "/images/default.jpg"

// CartLine represents one product entry in the cart with its quantity
type CartLine struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns unitPrice × quantity for the line
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart is the ordered list of cart lines, kept in add order.
// A line with quantity <= 0 never stays in the cart and product ids are unique.
type Cart struct {
	lines []CartLine
}

// NewCart builds a cart from previously stored lines.
// Lines without a product id, with a non-positive quantity or repeating an
// earlier product id are dropped; the number of dropped lines is returned.
func NewCart(lines []CartLine) (*Cart, int) {
	c := &Cart{lines: make([]CartLine, 0, len(lines))}
	dropped := 0
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 || c.index(line.ProductID) >= 0 {
			dropped++
			continue
		}
		c.lines = append(c.lines, line)
	}
	return c, dropped
}

func (c *Cart) index(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add increments the quantity of an existing line or appends a new line with quantity 1.
// placeholder is used as image when the product has none.
func (c *Cart) Add(product Product, placeholder string) CartLine {
	if i := c.index(product.ID); i >= 0 {
		c.lines[i].Quantity++
		return c.lines[i]
	}

	image := product.ImageURL
	if image == "" {
		image = placeholder
	}
	line := CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		ImageURL:  image,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	return line
}

// SetQuantity sets the quantity of a line, removing it when quantity <= 0.
// Returns false if no line exists for productID.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.Remove(productID)
		return true
	}
	c.lines[i].Quantity = quantity
	return true
}

// Remove filters the line out of the cart. Removing an absent id is a no-op.
func (c *Cart) Remove(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = make([]CartLine, 0)
}

// Quantity returns the quantity of a line or 0 if absent
func (c *Cart) Quantity(productID string) int {
	if i := c.index(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Count returns the sum of all line quantities
func (c *Cart) Count() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Total returns the sum of unitPrice × quantity over all lines
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Lines returns a copy of the cart lines in add order
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// FormatPrice renders an amount with exactly two decimal digits
func FormatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
