package modules

import (
	"slices"

	"github.com/RobinJosephDev/AdminUILinux/modules/core"
	"github.com/RobinJosephDev/AdminUILinux/modules/directory"
	"github.com/RobinJosephDev/AdminUILinux/modules/freight"
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
)

// Resource is the schema surface the registry exposes without the entity
// type parameter. Every crud.Schema satisfies it.
type Resource interface {
	Name() string
	Fields() []crud.Field
}

// Module groups the resources one entity package contributes.
type Module struct {
	Name      string
	Resources []Resource
}

// BuiltInModules lists every entity module shipped with the application.
var BuiltInModules = []Module{
	{Name: "core", Resources: []Resource{core.UserSchema}},
	{Name: "directory", Resources: []Resource{
		directory.CompanySchema,
		directory.CarrierSchema,
		directory.VendorSchema,
		directory.CustomerSchema,
	}},
	{Name: "freight", Resources: []Resource{
		freight.OrderSchema,
		freight.DispatchSchema,
	}},
}

// Schema returns the registered schema for a REST collection name.
func Schema(name string) (Resource, bool) {
	for _, m := range BuiltInModules {
		for _, r := range m.Resources {
			if r.Name() == name {
				return r, true
			}
		}
	}
	return nil, false
}

// ResourceNames returns every REST collection name across the built-in
// modules.
func ResourceNames() []string {
	out := make([]string, 0, 8)
	for _, m := range BuiltInModules {
		for _, r := range m.Resources {
			out = append(out, r.Name())
		}
	}
	slices.Sort(out)
	return out
}
