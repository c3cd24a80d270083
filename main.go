package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"raw_httpd/internal/bootstrap"
	"raw_httpd/internal/config"
	"raw_httpd/internal/version"
)

func main() {
	directory := flag.String("directory", "", "directory served under /files/ (overrides FILES_DIR)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersion())
		os.Exit(0)
	}

	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if *directory != "" {
		if err := os.Setenv("FILES_DIR", *directory); err != nil {
			log.Fatalf("Failed to apply --directory: %s", err)
		}
	}

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	app, err := bootstrap.New(conf)
	if err != nil {
		log.Fatalf("Failed to initialize: %s", err)
	}

	if err = app.Run(); err != nil {
		log.Fatalf("Application error: %s", err)
	}
}
