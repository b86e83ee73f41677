package freight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
)

func TestOrder_DeliveryCannotPrecedePickup(t *testing.T) {
	b := crud.NewFormBinder(OrderSchema, Order{Customer: "Sunbelt Logistics"})

	require.NoError(t, b.AddItem("origin_location"))
	require.NoError(t, b.AddItem("destination_location"))
	require.NoError(t, b.UpdateItem("origin_location", 0, Location{City: "Winnipeg", Date: "2024-04-10"}))
	require.NoError(t, b.UpdateItem("destination_location", 0, Location{City: "Chicago", Date: "2024-04-08"}))

	require.NotEmpty(t, b.Errors()["destination_location[0].date"])

	require.NoError(t, b.UpdateItem("destination_location", 0, Location{City: "Chicago", Date: "2024-04-12"}))
	require.Empty(t, b.Errors()["destination_location[0].date"])
	require.True(t, b.Validate())
}

func TestOrder_UndatedStopsAreNotCompared(t *testing.T) {
	b := crud.NewFormBinder(OrderSchema, Order{Customer: "Sunbelt Logistics"})

	require.NoError(t, b.AddItem("origin_location"))
	require.NoError(t, b.AddItem("destination_location"))
	require.Empty(t, b.Errors()["destination_location[0].date"])
}

func TestOrder_FinalPriceComputedFromBaseAndTaxes(t *testing.T) {
	b := crud.NewFormBinder(OrderSchema, Order{Customer: "Sunbelt Logistics"})

	require.NoError(t, b.SetField("base_price", "250.00"))
	require.NoError(t, b.SetField("gst", "12.50"))
	require.Equal(t, "262.50", b.Draft().FinalPrice)
}

func TestOrder_ChargeRows(t *testing.T) {
	b := crud.NewFormBinder(OrderSchema, Order{Customer: "Sunbelt Logistics"})

	require.NoError(t, b.AddItem("charges"))
	require.NoError(t, b.UpdateItem("charges", 0, Charge{Type: "Fuel surcharge", Charge: -5}))
	require.NotEmpty(t, b.Errors()["charges[0].charge"])

	require.NoError(t, b.UpdateItem("charges", 0, Charge{Type: "Fuel surcharge", Charge: 75.50}))
	require.Empty(t, b.Errors()["charges[0].charge"])
}
