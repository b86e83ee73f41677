package directory

import (
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
)

type Vendor struct {
	ID           int    `json:"id" crud:"key"`
	Type         string `json:"type" validate:"omitempty,max=50"`
	LegalName    string `json:"legal_name" validate:"required,max=200"`
	RemitName    string `json:"remit_name" validate:"omitempty,max=200"`
	VendorType   string `json:"vendor_type" validate:"omitempty,max=50"`
	Service      string `json:"service" validate:"omitempty,max=100"`
	SCAC         string `json:"scac" validate:"omitempty,max=10"`
	DocketNumber string `json:"docket_number" validate:"omitempty,max=30"`
	VendorCode   string `json:"vendor_code" validate:"omitempty,max=30"`
	GSTHSTNumber string `json:"gst_hst_number" validate:"omitempty,max=30"`
	QSTNumber    string `json:"qst_number" validate:"omitempty,max=30"`
	CABondNumber string `json:"ca_bond_number" validate:"omitempty,max=30"`
	Website      string `json:"website" validate:"omitempty,max=255,url"`

	PrimaryAddress string `json:"primary_address" validate:"omitempty,max=255,address_chars"`
	PrimaryCity    string `json:"primary_city" validate:"omitempty,max=100,letters_punct"`
	PrimaryState   string `json:"primary_state" validate:"omitempty,max=100,letters_punct"`
	PrimaryCountry string `json:"primary_country" validate:"omitempty,max=100,letters_punct"`
	PrimaryPostal  string `json:"primary_postal" validate:"omitempty,max=20"`
	PrimaryPhone   string `json:"primary_phone" validate:"omitempty,max=30,phone_chars"`
	PrimaryEmail   string `json:"primary_email" validate:"omitempty,max=255,email"`

	ARName  string `json:"ar_name" validate:"omitempty,max=200,letters_punct"`
	AREmail string `json:"ar_email" validate:"omitempty,max=255,email"`
	ARPhone string `json:"ar_contact_no" validate:"omitempty,max=30,phone_chars"`
	APName  string `json:"ap_name" validate:"omitempty,max=200,letters_punct"`
	APEmail string `json:"ap_email" validate:"omitempty,max=255,email"`
	APPhone string `json:"ap_contact_no" validate:"omitempty,max=30,phone_chars"`

	CargoCompany     string `json:"cargo_company" validate:"omitempty,max=200,letters_punct"`
	CargoPolicyStart string `json:"cargo_policy_start" crud:"date" validate:"omitempty,date_ymd"`
	CargoPolicyEnd   string `json:"cargo_policy_end" crud:"date" validate:"omitempty,date_ymd"`
	CargoInsAmt      string `json:"cargo_ins_amt" validate:"omitempty,money"`

	LiabCompany     string `json:"liab_company" validate:"omitempty,max=200,letters_punct"`
	LiabPolicyStart string `json:"liab_policy_start" crud:"date" validate:"omitempty,date_ymd"`
	LiabPolicyEnd   string `json:"liab_policy_end" crud:"date" validate:"omitempty,date_ymd"`
	LiabInsAmt      string `json:"liab_ins_amt" validate:"omitempty,money"`

	BankName     string `json:"bank_name" validate:"omitempty,max=200,letters_punct"`
	BankPhone    string `json:"bank_phone" validate:"omitempty,max=30,phone_chars"`
	BankEmail    string `json:"bank_email" validate:"omitempty,max=255,email"`
	BankUSAccNo  string `json:"bank_us_acc_no" validate:"omitempty,max=30"`
	BankCdnAccNo string `json:"bank_cdn_acc_no" validate:"omitempty,max=30"`
	BankAddress  string `json:"bank_address" validate:"omitempty,max=255,address_chars"`

	CreatedAt string `json:"created_at" crud:"readonly"`
	UpdatedAt string `json:"updated_at" crud:"readonly"`
}

var VendorSchema = crud.MustSchema[Vendor]("vendor",
	crud.WithLabel[Vendor](func(v Vendor) string { return v.LegalName }),
	crud.WithRefinement[Vendor](func(v *Vendor, errs crud.ErrorMap) {
		crud.RequireDateOrder(errs, "cargo_policy_end", v.CargoPolicyStart, v.CargoPolicyEnd)
		crud.RequireDateOrder(errs, "liab_policy_end", v.LiabPolicyStart, v.LiabPolicyEnd)
	}),
)

func NewVendorController(client *httpapi.Client, opts ...crud.ListOption[Vendor]) *crud.ListController[Vendor] {
	return crud.NewListController(VendorSchema, httpapi.NewResource[Vendor](client, "vendor"), opts...)
}
