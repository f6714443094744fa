package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

// LoadEnv overrides configuration values with environment variables. Fields
// are matched by their `env` struct tag and walked recursively through nested
// settings structs.
func LoadEnv(config *AppConfig) error {
	return loadEnvForStruct(reflect.ValueOf(config).Elem())
}

// loadEnvForStruct processes a struct's fields, applying environment variable
// overrides for any field carrying an `env` tag.
func loadEnvForStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if value.Kind() == reflect.Struct {
			if err := loadEnvForStruct(value); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envName)
		if !exists || envValue == "" {
			continue
		}

		if err := setFieldValue(value, envValue); err != nil {
			return fmt.Errorf("error setting %s from %s: %w", field.Name, envName, err)
		}
	}

	return nil
}

// setFieldValue converts an environment variable string to the field's type
func setFieldValue(value reflect.Value, envValue string) error {
	switch value.Kind() {
	case reflect.String:
		value.SetString(envValue)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value.Type() == reflect.TypeOf(time.Duration(0)) {
			duration, err := time.ParseDuration(envValue)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", envValue, err)
			}
			value.SetInt(int64(duration))
			return nil
		}

		intValue, err := strconv.ParseInt(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", envValue, err)
		}
		value.SetInt(intValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf("invalid boolean %q: %w", envValue, err)
		}
		value.SetBool(boolValue)

	default:
		return fmt.Errorf("unsupported field kind %s", value.Kind())
	}

	return nil
}
