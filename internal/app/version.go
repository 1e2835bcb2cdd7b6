package app

// Version is set at build time with -ldflags "-X github.com/levelupgamer/lu/internal/app.Version=v1.2.3".
var Version = "dev"
