package directory

import (
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
)

// Contact is one repeated contact block on a carrier.
type Contact struct {
	Name        string `json:"name" validate:"omitempty,max=200,letters_punct"`
	Phone       string `json:"phone" validate:"omitempty,max=30,phone_chars"`
	Email       string `json:"email" validate:"omitempty,max=255,email"`
	Fax         string `json:"fax" validate:"omitempty,max=30,phone_chars"`
	Designation string `json:"designation" validate:"omitempty,max=100"`
}

// Equipment references an equipment type by its backend id.
type Equipment struct {
	Equipment int `json:"equipment" validate:"omitempty,min=1"`
}

// Lane is one serviced origin/destination pair.
type Lane struct {
	From string `json:"from" validate:"omitempty,max=100,letters_punct"`
	To   string `json:"to" validate:"omitempty,max=100,letters_punct"`
}

type Carrier struct {
	ID             int    `json:"id" crud:"key"`
	DBA            string `json:"dba" validate:"required,max=200"`
	LegalName      string `json:"legal_name" validate:"required,max=200"`
	RemitName      string `json:"remit_name" validate:"omitempty,max=200"`
	AccNo          string `json:"acc_no" validate:"omitempty,max=30"`
	Branch         string `json:"branch" validate:"omitempty,max=100"`
	Website        string `json:"website" validate:"omitempty,max=255,url"`
	FedIDNo        string `json:"fed_id_no" validate:"omitempty,max=30"`
	PrefCurr       string `json:"pref_curr" validate:"omitempty,oneof=CAD USD"`
	PayTerms       string `json:"pay_terms" validate:"omitempty,max=100"`
	Form1099       bool   `json:"form_1099"`
	Advertise      bool   `json:"advertise"`
	AdvertiseEmail string `json:"advertise_email" validate:"omitempty,max=255,email"`
	CarrType       string `json:"carr_type" validate:"omitempty,max=50"`
	Rating         string `json:"rating" validate:"omitempty,max=10"`
	DocketNo       string `json:"docket_no" validate:"omitempty,max=30"`
	DotNumber      string `json:"dot_number" validate:"omitempty,max=30"`
	WCBNo          string `json:"wcb_no" validate:"omitempty,max=30"`
	CABondNo       string `json:"ca_bond_no" validate:"omitempty,max=30"`
	USBondNo       string `json:"us_bond_no" validate:"omitempty,max=30"`
	SCAC           string `json:"scac" validate:"omitempty,max=10"`
	CSAApproved    bool   `json:"csa_approved"`
	Hazmat         bool   `json:"hazmat"`
	SMSCCode       string `json:"smsc_code" validate:"omitempty,max=30"`
	Approved       bool   `json:"approved"`

	LiProvider  string  `json:"li_provider" validate:"omitempty,max=200,letters_punct"`
	LiPolicyNo  string  `json:"li_policy_no" validate:"omitempty,max=50"`
	LiCoverage  float64 `json:"li_coverage" validate:"omitempty,min=0"`
	LiStartDate string  `json:"li_start_date" crud:"date" validate:"omitempty,date_ymd"`
	LiEndDate   string  `json:"li_end_date" crud:"date" validate:"omitempty,date_ymd"`

	CiProvider  string  `json:"ci_provider" validate:"omitempty,max=200,letters_punct"`
	CiPolicyNo  string  `json:"ci_policy_no" validate:"omitempty,max=50"`
	CiCoverage  float64 `json:"ci_coverage" validate:"omitempty,min=0"`
	CiStartDate string  `json:"ci_start_date" crud:"date" validate:"omitempty,date_ymd"`
	CiEndDate   string  `json:"ci_end_date" crud:"date" validate:"omitempty,date_ymd"`

	PrimaryAddress string `json:"primary_address" validate:"omitempty,max=255,address_chars"`
	PrimaryCity    string `json:"primary_city" validate:"omitempty,max=100,letters_punct"`
	PrimaryState   string `json:"primary_state" validate:"omitempty,max=100,letters_punct"`
	PrimaryCountry string `json:"primary_country" validate:"omitempty,max=100,letters_punct"`
	PrimaryPostal  string `json:"primary_postal" validate:"omitempty,max=20"`
	PrimaryPhone   string `json:"primary_phone" validate:"omitempty,max=30,phone_chars"`

	Contacts   []Contact   `json:"contacts" validate:"omitempty,dive"`
	Equipments []Equipment `json:"equipments" validate:"omitempty,dive"`
	Lanes      []Lane      `json:"lanes" validate:"omitempty,dive"`

	BrokCarrAggmt crud.FileRef `json:"brok_carr_aggmt"`
	CoiCert       crud.FileRef `json:"coi_cert"`

	CreatedAt string `json:"created_at" crud:"readonly"`
	UpdatedAt string `json:"updated_at" crud:"readonly"`
}

var CarrierSchema = crud.MustSchema[Carrier]("carrier",
	crud.WithLabel[Carrier](func(c Carrier) string { return c.DBA }),
	crud.WithRefinement[Carrier](func(c *Carrier, errs crud.ErrorMap) {
		crud.RequireDateOrder(errs, "li_end_date", c.LiStartDate, c.LiEndDate)
		crud.RequireDateOrder(errs, "ci_end_date", c.CiStartDate, c.CiEndDate)
	}),
)

func NewCarrierController(client *httpapi.Client, opts ...crud.ListOption[Carrier]) *crud.ListController[Carrier] {
	return crud.NewListController(CarrierSchema, httpapi.NewResource[Carrier](client, "carrier"), opts...)
}
