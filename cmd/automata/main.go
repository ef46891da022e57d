package main

import (
	"flag"
	"log"
	"os"

	"github.com/MRehanMehdi/automata-regex-engine/internal/render"
	"github.com/MRehanMehdi/automata-regex-engine/internal/shell"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("automata: ")
	noColor := flag.Bool("no-color", false, "disable coloured verdicts")
	flag.Parse()

	render.SetColor(!*noColor)
	if err := shell.New(os.Stdout).Run(); err != nil {
		log.Fatal(err)
	}
}
