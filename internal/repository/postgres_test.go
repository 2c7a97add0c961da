package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PoolConfig
		want PoolConfig
	}{
		{"zero value", PoolConfig{}, PoolConfig{25, 10, 300, 60}},
		{"explicit kept", PoolConfig{50, 20, 600, 120}, PoolConfig{50, 20, 600, 120}},
		{"idle capped by open", PoolConfig{MaxOpenConns: 4, MaxIdleConns: 8}, PoolConfig{4, 4, 300, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}

func TestConnect_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Connect(ctx, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", PoolConfig{}, 5, time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
