package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"notegrid/config"
	"notegrid/database"
	"notegrid/grid"
	"notegrid/logger"
	"notegrid/tuiutil"
	"notegrid/viewer"
)

var (
	configPath   string
	envPath      string
	databaseType string
	theme        string
	help         bool
	ascii        bool
)

func main() {
	flag.Usage = func() {
		lines := strings.Split(viewer.GetHelpText(), "\n")
		for _, v := range lines {
			println(v)
		}
	}

	flag.StringVar(&configPath, "c", "", "Path to a config file.")
	flag.StringVar(&envPath, "e", "", "Path to a .env file.")
	flag.StringVar(&databaseType, "d", "", "Specifies the SQL driver to use. Defaults to mysql.")
	flag.StringVar(&theme, "t", "", "Sets the color theme of the app.")
	flag.BoolVar(&help, "h", false, "Prints the help message.")
	flag.BoolVar(&ascii, "a", false, "Denotes that the app should render with minimal styling to remove ANSI sequences.")

	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		fmt.Printf("ERROR: could not load configuration: %v\n", err)
		os.Exit(1)
	}
	handleFlags(cfg)

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
		File:        cfg.Log.File,
	})
	if err != nil {
		fmt.Printf("ERROR: could not open log %s: %v\n", cfg.Log.File, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	gateway := database.NewGateway(cfg.Database, log)

	// a failed probe or load is reported and the grid opens empty anyway
	if _, err := gateway.Probe(ctx); err != nil {
		log.Error("startup probe failed", err, zap.String("database", cfg.Database.Name))
	}

	g := grid.New()
	sync := grid.NewSynchronizer(g, gateway, log)
	defer sync.Close()

	m := viewer.GetNewModel(ctx, g, cfg.Database.Table, log)
	m.ExportDir = cfg.UI.ExportDir
	if err := sync.Load(ctx); err != nil {
		m.WriteError(fmt.Sprintf("Could not load players: %v", err))
	}

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())

	if _, err := program.Run(); err != nil {
		log.Error("program exited with an error", err)
		fmt.Printf("ERROR: Error running notegrid: %v\n", err)
		os.Exit(1)
	}
}

// handleFlags lets command line flags override the loaded configuration
func handleFlags(cfg *config.AppConfig) {
	if databaseType != "" {
		cfg.Database.Driver = databaseType
		if err := cfg.Validate(); err != nil {
			fmt.Printf("ERROR: %v\n", err)
			flag.Usage()
			os.Exit(1)
		}
	}

	if theme != "" {
		cfg.UI.Theme = theme
	}
	tuiutil.SetTheme(cfg.UI.Theme)

	if ascii || cfg.UI.Ascii {
		tuiutil.Ascii = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
