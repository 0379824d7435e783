package cart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Item struct {
	Name  string
	Price int64
}

// Cart holds the items of a single shopper; it is not safe for concurrent use.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{
		items: []Item{},
	}
}

func (c *Cart) Add(name string, price int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("item without name")
	}
	if price < 0 {
		return fmt.Errorf("item %s has negative price %d", name, price)
	}
	if price > math.MaxInt64-c.Total() {
		return fmt.Errorf("item %s makes the cart total too large", name)
	}
	c.items = append(c.items, Item{Name: name, Price: price})
	return nil
}

// AddPriced adds an item whose price is displayed text such as "12,500".
func (c *Cart) AddPriced(name string, priceText string) error {
	price, err := ParsePrice(priceText)
	if err != nil {
		return err
	}
	return c.Add(name, price)
}

func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Count() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// ParsePrice accepts whole shillings with optional thousands separators.
func ParsePrice(text string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	price, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price '%s'", text)
	}
	return price, nil
}
