package xcontext

import (
	"context"
	"testing"

	"github.com/draffle-lab/client/config"
	"github.com/stretchr/testify/require"
)

func TestRequestPrincipal(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, "", RequestPrincipal(ctx))

	ctx = WithRequestPrincipal(ctx, "w3gef-eqllq-zz")
	require.Equal(t, "w3gef-eqllq-zz", RequestPrincipal(ctx))
}

func TestDefaults(t *testing.T) {
	ctx := context.Background()

	// A bare context falls back to defaults instead of panicking.
	require.Equal(t, config.Default(), Configs(ctx))
	require.NotNil(t, Logger(ctx))
	require.Nil(t, DB(ctx))
}
