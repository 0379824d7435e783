package cart

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		c := New()
		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.Count())
		assert.Equal(t, int64(0), c.Total())
	})

	t.Run("Add and total", func(t *testing.T) {
		c := New()
		assert.NoError(t, c.AddPriced("Neural Visor", "12,500"))
		assert.NoError(t, c.Add("Holo Band", 3000))

		assert.Equal(t, 2, c.Count())
		assert.Equal(t, int64(15500), c.Total())
		assert.Equal(t, []Item{{Name: "Neural Visor", Price: 12500}, {Name: "Holo Band", Price: 3000}}, c.Items())
	})

	t.Run("Items is a copy", func(t *testing.T) {
		c := New()
		assert.NoError(t, c.Add("a", 1))
		items := c.Items()
		items[0].Price = 999
		assert.Equal(t, int64(1), c.Total())
	})

	t.Run("Reject item that overflows total", func(t *testing.T) {
		c := New()
		assert.NoError(t, c.Add("a", math.MaxInt64-10))
		assert.NoError(t, c.Add("b", 10))
		assert.Error(t, c.Add("c", 1))

		assert.Equal(t, 2, c.Count())
		assert.Equal(t, int64(math.MaxInt64), c.Total())
	})

	t.Run("Reject invalid items", func(t *testing.T) {
		c := New()
		assert.Error(t, c.Add("", 10))
		assert.Error(t, c.Add("a", -1))
		assert.Error(t, c.AddPriced("a", "abc"))
		assert.True(t, c.IsEmpty())
	})
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		in      string
		price   int64
		invalid bool
	}{
		{in: "1500", price: 1500},
		{in: "1,500", price: 1500},
		{in: " 1,250,000 ", price: 1250000},
		{in: "", invalid: true},
		{in: "12.50", invalid: true},
		{in: "KES 100", invalid: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			price, err := ParsePrice(tc.in)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.price, price)
		})
	}
}

func TestDecodeForm(t *testing.T) {
	form := url.Values{
		"items[0].name":  []string{"Neural Visor"},
		"items[0].price": []string{"12,500"},
		"items[1].name":  []string{"Holo Band"},
		"items[1].price": []string{"3000"},
		"phone":          []string{"254712345678"},
	}

	f, err := NewFromValues(form)
	assert.NoError(t, err)
	assert.Equal(t, Form{
		Items: []FormItem{
			{Name: "Neural Visor", Price: "12,500"},
			{Name: "Holo Band", Price: "3000"},
		},
		Phone: "254712345678",
	}, f)

	c, err := f.Cart()
	assert.NoError(t, err)
	assert.Equal(t, int64(15500), c.Total())
}

func TestFormWithInvalidPrice(t *testing.T) {
	f := Form{Items: []FormItem{{Name: "Neural Visor", Price: "free"}}}

	_, err := f.Cart()
	assert.Error(t, err)
}

func TestFormSkipsUnselectedRows(t *testing.T) {
	form := url.Values{
		"items[0].price": []string{"12,500"},
		"items[2].name":  []string{"Holo Band"},
		"items[2].price": []string{"3,000"},
	}

	f, err := NewFromValues(form)
	assert.NoError(t, err)

	c, err := f.Cart()
	assert.NoError(t, err)
	assert.Equal(t, []Item{{Name: "Holo Band", Price: 3000}}, c.Items())
}

func TestFormWithOverflowingTotal(t *testing.T) {
	f := Form{Items: []FormItem{
		{Name: "Neural Visor", Price: "9,223,372,036,854,775,807"},
		{Name: "Holo Band", Price: "9,223,372,036,854,775,807"},
	}}

	_, err := f.Cart()
	assert.Error(t, err)
}
