package serve

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/levelupgamer/lu/internal/app"
	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/server"
)

// Serve runs the HTTP API until interrupted.
func Serve(args []string, flags *dispatchers.ParsedFlags) error {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	return serve(args, flags, DefaultDeps())
}

func serve(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}
	if addr, ok := flags.Lookup("--addr"); ok && addr != "" {
		cfg.Addr = addr
	}

	application, err := deps.NewApp()
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(application) }()

	featured := featuredCount(application.Config)
	application.Logger.Info("serve: listening on %s, featured=%d", cfg.Addr, featured)

	srv := deps.NewServer(application.Store, accessLog(application.Logger), server.WithFeaturedCount(featured))

	ctx, cancel := deps.Context()
	defer cancel()

	_, _ = application.Output.Printf("Serving %s on http://%s (Ctrl+C to stop)\n",
		application.Styler.Header("Level-Up Gamer"), cfg.Addr)
	return srv.Run(ctx, cfg)
}

func featuredCount(cfg domain.ConfigProvider) int {
	value, ok := cfg.Get("featured_count")
	if !ok {
		return catalog.DefaultFeaturedCount
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return catalog.DefaultFeaturedCount
	}
	return n
}
