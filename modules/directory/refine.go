package directory

import "github.com/RobinJosephDev/AdminUILinux/pkg/crud"

func policyRangesOrdered(field string, policies []InsurancePolicy, errs crud.ErrorMap) {
	for i, p := range policies {
		crud.RequireDateOrder(errs, crud.ListPath(field, i, "policy_end"), p.PolicyStart, p.PolicyEnd)
	}
}
