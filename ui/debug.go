package ui

import (
	"log"
	"os"
)

var debugLog *log.Logger

func init() {
	f, _ := os.Create("/tmp/battleship-debug.log")
	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)
}
