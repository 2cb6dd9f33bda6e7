package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("customer-service")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "customer-service", cfg.Database.Name)
	assert.Equal(t, "http://127.0.0.1:8083", cfg.Peers.OrderURL)
	assert.Equal(t, 2*time.Second, cfg.ClientTimeout)
	assert.Equal(t, "order.exchange", cfg.RabbitMQ.Exchange)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ECOM_HTTP_PORT", "9090")
	t.Setenv("ECOM_PEERS_ORDER_URL", "http://orders.internal:8080")

	cfg, err := Load("product-service")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "http://orders.internal:8080", cfg.Peers.OrderURL)
}

func TestConfig_DSN(t *testing.T) {
	cfg, err := Load("order-service")
	require.NoError(t, err)
	cfg.Database.User = "app"
	cfg.Database.Password = "secret"

	assert.Equal(t,
		"app:secret@tcp(127.0.0.1:3306)/order-service?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}
