package main

import (
	"context"
	"log"
	"os"

	"github.com/edupathpro/edupath/core"
	mongodb "github.com/edupathpro/edupath/storage/mongo"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := mongodb.Open(conf)
	errAndDie(err)
	defer db.Close(context.Background())

	// start CLI
	cli := commandLine{
		usrRepo: mongodb.NewUserRepository(db),
		catRepo: mongodb.NewCatalogRepository(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
