package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvVars struct {
	Damping   float64
	Samples   int
	Epsilon   float64
	Port      int
	ServerLog bool
}

func ReadEnvVars() EnvVars {
	// Loading .env file if it exists
	// It will not override already existing env vars
	_ = godotenv.Load()
	damping := readFloatEnvVarOr("DAMPING", 0.85)
	samples := readIntEnvVarOr("SAMPLES", 10000)
	epsilon := readFloatEnvVarOr("EPSILON", 0.001)
	port := readIntEnvVarOr("PORT", 1234)
	serverLog := readBoolEnvVarOr("SERVER_LOG", false)
	return EnvVars{
		Damping: damping, Samples: samples, Epsilon: epsilon,
		Port: port, ServerLog: serverLog,
	}
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s not set", name)
	}
	return value, nil
}

func readIntEnvVarOr(name string, or int) int {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		FailOnError("Could not convert %s to a number", err, name)
	}
	return value
}

func readFloatEnvVarOr(name string, or float64) float64 {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		FailOnError("Could not convert %s to a number", err, name)
	}
	return value
}

func readBoolEnvVarOr(name string, or bool) bool {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or
	}
	return value
}
