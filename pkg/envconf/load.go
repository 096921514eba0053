// Package envconf fills struct fields from environment variables declared
// with `env:"NAME"` tags. A field may carry `envDefault:"value"` to make the
// variable optional; untagged struct fields are walked recursively.
package envconf

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var (
	ErrMissingRequired = errors.New("missing required environment variable")
	ErrUnsupportedType = errors.New("unsupported field type")
)

func Load(dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.New("destination must be a non-nil pointer to a struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return errors.New("destination must point to a struct")
	}

	t := v.Type()
	for i := range v.NumField() {
		sf := t.Field(i)
		fv := v.Field(i)

		if !sf.IsExported() {
			continue
		}

		name := sf.Tag.Get("env")
		if name == "" || name == "-" {
			// Untagged struct fields (except time.Duration, an int64
			// underneath) are nested config blocks.
			if fv.Kind() == reflect.Struct && sf.Type != reflect.TypeOf(time.Duration(0)) {
				err := Load(fv.Addr().Interface())
				if err != nil {
					return fmt.Errorf("load nested %q: %w", sf.Name, err)
				}
			}

			continue
		}

		raw, ok := os.LookupEnv(name)
		if !ok {
			def, hasDef := sf.Tag.Lookup("envDefault")
			if !hasDef {
				return fmt.Errorf("%w: %s (field %q)", ErrMissingRequired, name, sf.Name)
			}

			raw = def
		}

		err := setValue(fv, raw)
		if err != nil {
			return fmt.Errorf("parse %q for field %q: %w", name, sf.Name, err)
		}
	}

	return nil
}

func setValue(fv reflect.Value, raw string) error {
	if fv.CanAddr() {
		u, ok := fv.Addr().Interface().(encoding.TextUnmarshaler)
		if ok {
			err := u.UnmarshalText([]byte(raw))
			if err != nil {
				return fmt.Errorf("unmarshal text: %w", err)
			}

			return nil
		}
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse bool: %w", err)
		}

		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if fv.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("parse duration: %w", err)
			}

			fv.SetInt(int64(d))

			return nil
		}

		i, err := strconv.ParseInt(raw, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse int: %w", err)
		}

		fv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse uint: %w", err)
		}

		fv.SetUint(u)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, fv.Kind())
	}

	return nil
}
