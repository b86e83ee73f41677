package modules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceNames(t *testing.T) {
	require.Equal(t,
		[]string{"carrier", "company", "customer", "dispatch", "order", "user", "vendor"},
		ResourceNames())
}

func TestSchemaLookup(t *testing.T) {
	for _, name := range ResourceNames() {
		r, ok := Schema(name)
		require.Truef(t, ok, "resource %q not registered", name)
		require.Equal(t, name, r.Name())
		require.NotEmpty(t, r.Fields())
	}

	_, ok := Schema("no_such_resource")
	require.False(t, ok)
}
