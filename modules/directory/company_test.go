package directory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
)

func TestCompany_BankListLifecycle(t *testing.T) {
	b := crud.NewFormBinder(CompanySchema, Company{Name: "Sunbelt Logistics"})

	require.NoError(t, b.AddItem("bank_info"))
	require.NoError(t, b.AddItem("bank_info"))
	require.Equal(t, 2, b.Items("bank_info"))

	require.NoError(t, b.UpdateItem("bank_info", 0, Bank{Name: "First National", Email: "treasury@firstnat.test"}))
	require.NoError(t, b.UpdateItem("bank_info", 1, Bank{Email: "bad-address"}))
	require.NotEmpty(t, b.Errors()["bank_info[1].email"])

	// Removing the invalid row clears its error with it.
	require.NoError(t, b.RemoveItem("bank_info", 1))
	require.Equal(t, 1, b.Items("bank_info"))
	require.Empty(t, b.Errors()["bank_info[1].email"])
	require.True(t, b.Validate())

	require.Equal(t, "First National", b.Draft().BankInfo[0].Name)
}

func TestCompany_InsuranceRangeErrorsPerRow(t *testing.T) {
	b := crud.NewFormBinder(CompanySchema, Company{Name: "Sunbelt Logistics"})

	require.NoError(t, b.AddItem("cargo_insurance"))
	require.NoError(t, b.AddItem("cargo_insurance"))
	require.NoError(t, b.UpdateItem("cargo_insurance", 0, InsurancePolicy{
		Company:     "Great Lakes Mutual",
		PolicyStart: "2024-01-01",
		PolicyEnd:   "2023-06-30",
	}))
	require.NoError(t, b.UpdateItem("cargo_insurance", 1, InsurancePolicy{
		Company:     "Great Lakes Mutual",
		PolicyStart: "2024-01-01",
		PolicyEnd:   "2025-01-01",
	}))

	errs := b.Errors()
	require.NotEmpty(t, errs["cargo_insurance[0].policy_end"])
	require.Empty(t, errs["cargo_insurance[1].policy_end"])
}

func TestCompany_LiabilityInsuranceUsesBackendKey(t *testing.T) {
	b := crud.NewFormBinder(CompanySchema, Company{Name: "Sunbelt Logistics"})

	require.NoError(t, b.AddItem("liablility_insurance"))
	require.NoError(t, b.UpdateItem("liablility_insurance", 0, InsurancePolicy{
		PolicyStart: "2024-05-01",
		PolicyEnd:   "2024-04-01",
	}))
	require.NotEmpty(t, b.Errors()["liablility_insurance[0].policy_end"])
}

func TestCompany_ScalarRules(t *testing.T) {
	b := crud.NewFormBinder(CompanySchema, Company{})

	require.NotEmpty(t, b.FieldError("name"))
	require.NoError(t, b.SetField("name", "Sunbelt Logistics"))
	require.Empty(t, b.FieldError("name"))

	require.NoError(t, b.SetField("city", "St. John's"))
	require.Empty(t, b.FieldError("city"))
	require.NoError(t, b.SetField("city", "Winnipeg 2"))
	require.NotEmpty(t, b.FieldError("city"))

	require.NoError(t, b.SetField("website", "https://sunbelt.example.com"))
	require.Empty(t, b.FieldError("website"))
}
