package main

import (
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/pkg/logger"
)

func TestServe_PuertoOcupadoDevuelveError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	quit := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() { done <- serve(app, busy.Addr().String(), quit, logger.Nop()) }()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, busy.Addr().String())
	case <-time.After(5 * time.Second):
		t.Fatal("serve no terminó con el puerto ocupado")
	}
}

func TestServe_SenalApagaElServidor(t *testing.T) {
	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := free.Addr().String()
	require.NoError(t, free.Close())

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	quit := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() { done <- serve(app, addr, quit, logger.Nop()) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	quit <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("serve no terminó tras la señal")
	}
}
