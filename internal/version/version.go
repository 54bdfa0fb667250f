package version

// Version is set by ldflags: -X github.com/MatthiasKunnen/uf/internal/version.Version=...
var Version = "0.1.0"
