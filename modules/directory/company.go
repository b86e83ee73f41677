package directory

import (
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
)

// Bank is one repeated banking-info block on a company.
type Bank struct {
	Name         string `json:"name" validate:"omitempty,max=200,letters_punct"`
	Phone        string `json:"phone" validate:"omitempty,max=30,phone_chars"`
	Email        string `json:"email" validate:"omitempty,max=255,email"`
	Address      string `json:"address" validate:"omitempty,max=255,address_chars"`
	USAccountNo  string `json:"us_account_no" validate:"omitempty,max=30"`
	CDNAccountNo string `json:"cdn_account_no" validate:"omitempty,max=30"`
}

// InsurancePolicy is one cargo or liability insurance line.
type InsurancePolicy struct {
	Company     string `json:"company" validate:"omitempty,max=200,letters_punct"`
	PolicyStart string `json:"policy_start" crud:"date" validate:"omitempty,date_ymd"`
	PolicyEnd   string `json:"policy_end" crud:"date" validate:"omitempty,date_ymd"`
	Amount      string `json:"amount" validate:"omitempty,money"`
}

type Company struct {
	ID              int    `json:"id" crud:"key"`
	Name            string `json:"name" validate:"required,max=200"`
	InvoiceTerms    string `json:"invoice_terms" validate:"omitempty,max=150"`
	RateConfTerms   string `json:"rate_conf_terms" validate:"omitempty,max=150"`
	QuoteTerms      string `json:"quote_terms" validate:"omitempty,max=150"`
	InvoiceReminder string `json:"invoice_reminder" validate:"omitempty,max=150"`
	Address         string `json:"address" validate:"omitempty,max=255,address_chars"`
	City            string `json:"city" validate:"omitempty,max=100,letters_punct"`
	State           string `json:"state" validate:"omitempty,max=100,letters_punct"`
	Country         string `json:"country" validate:"omitempty,max=100,letters_punct"`
	Postal          string `json:"postal" validate:"omitempty,max=20"`
	Email           string `json:"email" validate:"omitempty,max=255,email"`
	Phone           string `json:"phone" validate:"omitempty,max=30,phone_chars"`
	Cell            string `json:"cell" validate:"omitempty,max=30,phone_chars"`
	Fax             string `json:"fax" validate:"omitempty,max=30,phone_chars"`
	InvoicePrefix   string `json:"invoice_prefix" validate:"omitempty,max=10"`
	SCAC            string `json:"SCAC" validate:"omitempty,max=10"`
	DocketNo        string `json:"docket_no" validate:"omitempty,max=30"`
	CarrierCode     string `json:"carrier_code" validate:"omitempty,max=30"`
	GSTHSTNo        string `json:"gst_hst_no" validate:"omitempty,max=30"`
	QSTNo           string `json:"qst_no" validate:"omitempty,max=30"`
	CABondNo        string `json:"ca_bond_no" validate:"omitempty,max=30"`
	Website         string `json:"website" validate:"omitempty,max=255,url"`
	Obsolete        bool   `json:"obsolete"`
	USTaxID         string `json:"us_tax_id" validate:"omitempty,max=30"`
	PayrollNo       string `json:"payroll_no" validate:"omitempty,max=30"`
	WCBNo           string `json:"wcb_no" validate:"omitempty,max=30"`
	DispatchEmail   string `json:"dispatch_email" validate:"omitempty,max=255,email"`
	APEmail         string `json:"ap_email" validate:"omitempty,max=255,email"`
	AREmail         string `json:"ar_email" validate:"omitempty,max=255,email"`
	CustCommEmail   string `json:"cust_comm_email" validate:"omitempty,max=255,email"`
	QuotEmail       string `json:"quot_email" validate:"omitempty,max=255,email"`

	BankInfo       []Bank            `json:"bank_info" validate:"omitempty,dive"`
	CargoInsurance []InsurancePolicy `json:"cargo_insurance" validate:"omitempty,dive"`
	// The misspelled key is what the backend serves.
	LiabilityInsurance []InsurancePolicy `json:"liablility_insurance" validate:"omitempty,dive"`

	CompanyPackage crud.FileRef `json:"company_package"`
	Insurance      crud.FileRef `json:"insurance"`

	CreatedAt string `json:"created_at" crud:"readonly"`
	UpdatedAt string `json:"updated_at" crud:"readonly"`
}

// CompanySchema validates one company draft; the policy-range refinements
// cover both insurance lists.
var CompanySchema = crud.MustSchema[Company]("company",
	crud.WithLabel[Company](func(c Company) string { return c.Name }),
	crud.WithRefinement[Company](func(c *Company, errs crud.ErrorMap) {
		policyRangesOrdered("cargo_insurance", c.CargoInsurance, errs)
		policyRangesOrdered("liablility_insurance", c.LiabilityInsurance, errs)
	}),
)

func NewCompanyController(client *httpapi.Client, opts ...crud.ListOption[Company]) *crud.ListController[Company] {
	return crud.NewListController(CompanySchema, httpapi.NewResource[Company](client, "company"), opts...)
}
