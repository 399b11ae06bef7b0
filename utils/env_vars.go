package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// GetEnv reads the environment variable name, falling back to defaultValue
// when it is unset or empty. The type parameter drives the parsing.
func GetEnv[T ~string | ~int | ~bool | ~float64](name string, defaultValue T) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return defaultValue
	}
	parsed, err := parseEnv[T](name, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

// GetRequiredEnv reads the environment variable name and exits the process
// when it is unset or empty.
func GetRequiredEnv[T ~string | ~int | ~bool | ~float64](name string) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	parsed, err := parseEnv[T](name, value)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

func parseEnv[T ~string | ~int | ~bool | ~float64](name, value string) (T, error) {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = value
	case *int:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return out, fmt.Errorf("environment variable %s is not valid: '%s' is not an integer", name, value)
		}
		*ptr = parsed
	case *bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return out, fmt.Errorf("environment variable %s is not valid: '%s' is not a boolean", name, value)
		}
		*ptr = parsed
	case *float64:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return out, fmt.Errorf("environment variable %s is not valid: '%s' is not a number", name, value)
		}
		*ptr = parsed
	}
	return out, nil
}
