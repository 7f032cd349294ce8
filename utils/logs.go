package utils

import (
	"fmt"
	"log"
)

var serverLog bool

func InitLog(server bool) {
	serverLog = server
}

func ServerLog(format string, v ...any) {
	if serverLog {
		log.Printf("INFO Server: %s", fmt.Sprintf(format, v...))
	}
}

func WarnLog(format string, v ...any) {
	log.Printf("WARN: %s", fmt.Sprintf(format, v...))
}
