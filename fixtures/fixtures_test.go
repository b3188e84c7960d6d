package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehiclesAreUniqueAndFresh(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range Vehicles() {
		assert.False(t, seen[v.ID], "duplicate id %s", v.ID)
		seen[v.ID] = true
		assert.NotEmpty(t, v.Name)
	}

	first := Vehicles()
	first[0].Name = "changed"
	assert.NotEqual(t, "changed", Vehicles()[0].Name)
}

func TestDealers(t *testing.T) {
	assert.Len(t, Dealers(), 3)
}
