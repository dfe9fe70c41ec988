package utils

import (
	"log"
	"os"
	"strconv"
)

// lookupEnv returns defaultValue when key is unset, empty or does not parse.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil {
		log.Printf("Error parsing %s=%q: %v, will use default value %v", key, value, err, defaultValue)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(value string) (string, error) { return value, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvStringSlice reads a comma separated value, e.g. "/,order,reservation".
func GetEnvStringSlice(key, defaultValue string) []string {
	return ParseCSV(GetEnvString(key, defaultValue))
}
