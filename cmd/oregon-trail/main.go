package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/oregon-trail/internal/config"
	"github.com/appengine-ltd/oregon-trail/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion  bool
		name         string
		profession   string
		difficulty   string
		catalogsPath string
		seed         int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&name, "name", "", "name of the party leader")
	flag.StringVar(&profession, "profession", "", "profession (banker, carpenter, doctor, farmer)")
	flag.StringVar(&difficulty, "difficulty", "", "difficulty (easy, normal, hard)")
	flag.Int64Var(&seed, "seed", 0, "random seed for reproducible games")
	flag.StringVar(&catalogsPath, "catalogs", "", "path to a catalogs YAML override")
	flag.Parse()

	if showVersion {
		fmt.Printf("Oregon Trail %s (%s) %s\n", version, commit, date)
		return
	}

	catalogs := config.Default()
	if catalogsPath != "" {
		loaded, err := config.Load(catalogsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		catalogs = loaded
	}

	app := ui.NewApp(ui.AppConfig{
		Catalogs:   catalogs,
		Name:       name,
		Profession: profession,
		Difficulty: difficulty,
		Seed:       seed,
		Version:    version,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
