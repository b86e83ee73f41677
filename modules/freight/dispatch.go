package freight

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
)

// Charge is one repeated charge or discount line.
type Charge struct {
	Type    string  `json:"type" validate:"omitempty,max=100"`
	Charge  float64 `json:"charge" validate:"omitempty,min=0"`
	Percent string  `json:"percent" validate:"omitempty,money"`
}

type Dispatch struct {
	ID            int    `json:"id" crud:"key"`
	Carrier       string `json:"carrier" validate:"required,max=200"`
	Contact       string `json:"contact" validate:"omitempty,max=200,letters_punct"`
	Equipment     string `json:"equipment" validate:"omitempty,max=100"`
	DriverMobile  string `json:"driver_mobile" validate:"omitempty,max=30,phone_chars"`
	TruckUnitNo   string `json:"truck_unit_no" validate:"omitempty,max=30"`
	TrailerUnitNo string `json:"trailer_unit_no" validate:"omitempty,max=30"`
	PapsParsNo    string `json:"paps_pars_no" validate:"omitempty,max=30"`
	TrackingCode  string `json:"tracking_code" crud:"readonly"`
	Border        string `json:"border" validate:"omitempty,max=100"`
	Currency      string `json:"currency" validate:"omitempty,oneof=CAD USD"`

	Rate      string   `json:"rate" validate:"omitempty,money"`
	Charges   []Charge `json:"charges" validate:"omitempty,dive"`
	Discounts []Charge `json:"discounts" validate:"omitempty,dive"`
	GST       string   `json:"gst" validate:"omitempty,money"`
	PST       string   `json:"pst" validate:"omitempty,money"`
	HST       string   `json:"hst" validate:"omitempty,money"`
	QST       string   `json:"qst" validate:"omitempty,money"`
	// Derived from rate and taxes; never edited or validated as input.
	FinalPrice string `json:"final_price" crud:"computed"`

	Status string `json:"status" validate:"omitempty,max=50"`

	CreatedAt string `json:"created_at" crud:"readonly"`
	UpdatedAt string `json:"updated_at" crud:"readonly"`
}

var DispatchSchema = crud.MustSchema[Dispatch]("dispatch",
	crud.WithLabel[Dispatch](func(d Dispatch) string { return d.Carrier }),
	crud.WithComputed[Dispatch]("final_price", func(d *Dispatch) {
		d.FinalPrice = sumMoney(d.Rate, d.GST, d.PST, d.HST, d.QST)
	}),
)

// NewDispatch seeds an add-form draft with a fresh tracking code.
func NewDispatch() Dispatch {
	return Dispatch{TrackingCode: NewTrackingCode()}
}

func NewTrackingCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

func NewDispatchController(client *httpapi.Client, opts ...crud.ListOption[Dispatch]) *crud.ListController[Dispatch] {
	return crud.NewListController(DispatchSchema, httpapi.NewResource[Dispatch](client, "dispatch"), opts...)
}

// sumMoney totals the given amounts, treating blanks and malformed values
// as zero the way the form did, and formats to two decimal places.
func sumMoney(amounts ...string) string {
	total := decimal.Zero
	for _, a := range amounts {
		if a == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return total.StringFixed(2)
}
