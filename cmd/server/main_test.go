package main

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"krishi/config"
	"krishi/database"
	"krishi/entities"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg := config.FromEnv(func(string) string { return "" })
	dir := t.TempDir()
	cfg.DBPath = filepath.Join(dir, "krishi.db")
	cfg.UploadDir = filepath.Join(dir, "uploads")
	cfg.StaticDir = ""
	cfg.LogLevel = "error"
	return cfg
}

func TestMigrateSeed(t *testing.T) {
	cfg := testConfig(t)
	root := newRootCmd(func() config.AppConfig { return cfg })

	for i := 0; i < 2; i++ {
		root.SetArgs([]string{"migrate", "--seed"})
		require.NoError(t, root.ExecuteContext(context.Background()))
	}

	db, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer database.Close(db)
	var n int64
	require.NoError(t, db.Model(&entities.MarketPrice{}).Count(&n).Error)
	assert.EqualValues(t, 6, n, "seeding twice does not duplicate rows")
}

func TestBuildAppRejectsUnknownImageStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.ImageStore = "ftp"
	db, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer database.Close(db)

	_, err = buildApp(context.Background(), &env{cfg: cfg, log: zap.NewNop()}, db)
	assert.ErrorContains(t, err, "IMAGE_STORE")
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Port = freePort(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serve(ctx, &env{cfg: cfg, log: zap.NewNop()}) }()

	client := &http.Client{Timeout: time.Second}
	defer client.CloseIdleConnections()
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://127.0.0.1:" + cfg.Port + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
