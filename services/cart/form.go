package cart

import (
	"net/http"
	"net/url"
	"strings"

	formcodec "github.com/go-playground/form/v4"

	"github.com/hatua/futuretech/lib/myerrors"
)

// Form is the checkout form the shop page posts.
type Form struct {
	Items []FormItem `form:"items"`
	Phone string     `form:"phone"`
}

type FormItem struct {
	Name  string `form:"name"`
	Price string `form:"price"`
}

func NewFromRequest(r *http.Request) (Form, error) {
	err := r.ParseForm()
	if err != nil {
		return Form{}, myerrors.NewInvalidInputError(err)
	}
	return NewFromValues(r.Form)
}

func NewFromValues(values url.Values) (Form, error) {
	f := Form{}
	err := formcodec.NewDecoder().Decode(&f, values)
	if err != nil {
		return f, myerrors.NewInvalidInputErrorf("error decoding form: %s", err)
	}

	return f, nil
}

// Cart fills a new cart with the posted items. Rows without a name are
// products the shopper did not select.
func (f Form) Cart() (*Cart, error) {
	c := New()
	for idx, item := range f.Items {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		err := c.AddPriced(item.Name, item.Price)
		if err != nil {
			return nil, myerrors.NewInvalidInputErrorf("item %d: %s", idx, err)
		}
	}
	return c, nil
}
