package fixtures

import (
	"context"
	"testing"

	"evdealer/repository/repotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	vehicles := &repotest.Vehicles{}
	dealers := repotest.NewDealers()

	nv, nd, err := Seed(ctx, vehicles, dealers)
	require.NoError(t, err)
	assert.Equal(t, len(Vehicles()), nv)
	assert.Equal(t, len(Dealers()), nd)

	nv, nd, err = Seed(ctx, vehicles, dealers)
	require.NoError(t, err)
	assert.Zero(t, nv)
	assert.Zero(t, nd)
	assert.Len(t, vehicles.Items, len(Vehicles()))
}
