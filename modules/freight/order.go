package freight

import (
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
)

// Location is one origin or destination stop with its appointment window.
type Location struct {
	Address string `json:"address" validate:"omitempty,max=255,address_chars"`
	City    string `json:"city" validate:"omitempty,max=100,letters_punct"`
	State   string `json:"state" validate:"omitempty,max=100,letters_punct"`
	Country string `json:"country" validate:"omitempty,max=100,letters_punct"`
	Postal  string `json:"postal" validate:"omitempty,max=20"`
	Date    string `json:"date" crud:"date" validate:"omitempty,date_ymd"`
	Time    string `json:"time" validate:"omitempty,max=10"`
}

type Order struct {
	ID            int    `json:"id" crud:"key"`
	Customer      string `json:"customer" validate:"required,max=200"`
	CustomerRefNo string `json:"customer_ref_no" validate:"omitempty,max=100"`
	CustomerPONo  string `json:"customer_po_no" validate:"omitempty,max=100"`
	Equipment     string `json:"equipment" validate:"omitempty,max=100"`
	Commodity     string `json:"commodity" validate:"omitempty,max=100"`
	LoadType      string `json:"load_type" validate:"omitempty,max=50"`
	Temperature   string `json:"temperature" validate:"omitempty,max=20"`
	Hot           bool   `json:"hot"`

	OriginLocation      []Location `json:"origin_location" validate:"omitempty,dive"`
	DestinationLocation []Location `json:"destination_location" validate:"omitempty,dive"`

	Charges   []Charge `json:"charges" validate:"omitempty,dive"`
	Discounts []Charge `json:"discounts" validate:"omitempty,dive"`
	Currency  string   `json:"currency" validate:"omitempty,oneof=CAD USD"`
	BasePrice string   `json:"base_price" validate:"omitempty,money"`
	GST       string   `json:"gst" validate:"omitempty,money"`
	PST       string   `json:"pst" validate:"omitempty,money"`
	HST       string   `json:"hst" validate:"omitempty,money"`
	QST       string   `json:"qst" validate:"omitempty,money"`
	// Derived from base price and taxes; never edited directly.
	FinalPrice string `json:"final_price" crud:"computed"`

	Notes string `json:"notes" validate:"omitempty,max=500"`

	CreatedAt string `json:"created_at" crud:"readonly"`
	UpdatedAt string `json:"updated_at" crud:"readonly"`
}

var OrderSchema = crud.MustSchema[Order]("order",
	crud.WithLabel[Order](func(o Order) string { return o.Customer }),
	crud.WithComputed[Order]("final_price", func(o *Order) {
		o.FinalPrice = sumMoney(o.BasePrice, o.GST, o.PST, o.HST, o.QST)
	}),
	crud.WithRefinement[Order](func(o *Order, errs crud.ErrorMap) {
		// Delivery cannot precede pickup when both first stops are dated.
		if len(o.OriginLocation) > 0 && len(o.DestinationLocation) > 0 {
			crud.RequireDateOrder(errs,
				crud.ListPath("destination_location", 0, "date"),
				o.OriginLocation[0].Date, o.DestinationLocation[0].Date)
		}
	}),
)

func NewOrderController(client *httpapi.Client, opts ...crud.ListOption[Order]) *crud.ListController[Order] {
	return crud.NewListController(OrderSchema, httpapi.NewResource[Order](client, "order"), opts...)
}
