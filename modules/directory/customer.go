package directory

import (
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
)

type Customer struct {
	ID       int    `json:"id" crud:"key"`
	CustName string `json:"cust_name" validate:"required,max=200"`
	CustType string `json:"cust_type" validate:"omitempty,max=50"`
	Email    string `json:"cust_email" validate:"omitempty,max=255,email"`
	Phone    string `json:"cust_contact_no" validate:"omitempty,max=30,phone_chars"`
	Website  string `json:"cust_website" validate:"omitempty,max=255,url"`

	PrimaryAddress string `json:"cust_primary_address" validate:"omitempty,max=255,address_chars"`
	PrimaryCity    string `json:"cust_primary_city" validate:"omitempty,max=100,letters_punct"`
	PrimaryState   string `json:"cust_primary_state" validate:"omitempty,max=100,letters_punct"`
	PrimaryCountry string `json:"cust_primary_country" validate:"omitempty,max=100,letters_punct"`
	PrimaryPostal  string `json:"cust_primary_postal" validate:"omitempty,max=20"`

	CreditStatus string `json:"credit_status" validate:"omitempty,oneof=Approved 'Not Approved'"`
	CreditAppd   string `json:"credit_appd" crud:"date" validate:"omitempty,date_ymd"`
	CreditExpd   string `json:"credit_expd" crud:"date" validate:"omitempty,date_ymd"`
	CreditTerms  string `json:"credit_terms" validate:"omitempty,max=100"`
	CreditLimit  string `json:"credit_limit" validate:"omitempty,money"`
	CreditNotes  string `json:"credit_notes" validate:"omitempty,max=500"`

	SBKAgreement    crud.FileRef `json:"cust_sbk_agreement"`
	CreditAgreement crud.FileRef `json:"cust_credit_agreement"`

	CreatedAt string `json:"created_at" crud:"readonly"`
	UpdatedAt string `json:"updated_at" crud:"readonly"`
}

var CustomerSchema = crud.MustSchema[Customer]("customer",
	crud.WithLabel[Customer](func(c Customer) string { return c.CustName }),
	crud.WithRefinement[Customer](func(c *Customer, errs crud.ErrorMap) {
		crud.RequireDateOrder(errs, "credit_expd", c.CreditAppd, c.CreditExpd)
	}),
)

func NewCustomerController(client *httpapi.Client, opts ...crud.ListOption[Customer]) *crud.ListController[Customer] {
	return crud.NewListController(CustomerSchema, httpapi.NewResource[Customer](client, "customer"), opts...)
}
