package hadoop

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
)

var decimal = regexp.MustCompile(`^[+-]?[0-9]+$`)

// decode copies the keys a site needs from an untyped component config into
// out. Absent keys and keys set to null are reported together as
// MissingFieldErrors.
func decode(site string, config map[string]any, out any) error {
	md := &mapstructure.Metadata{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		DecodeHook:       exactValueHook,
		WeaklyTypedInput: true,
		Metadata:         md,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(withoutNulls(config)); err != nil {
		return fieldErrors(site, err)
	}

	var mErr *multierror.Error
	unset := append([]string(nil), md.Unset...)
	sort.Strings(unset)
	for _, key := range unset {
		mErr = multierror.Append(mErr, &MissingFieldError{Site: site, Key: key})
	}
	return mErr.ErrorOrNil()
}

// exactValueHook refuses conversions that would change a value on its way
// into a field. Integer fields take integers, integral floats and decimal
// strings; string fields take anything but booleans.
func exactValueHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return exactInt(from, data)
	case reflect.String:
		if from.Kind() == reflect.Bool {
			return nil, fmt.Errorf("must be a string, got boolean %v", data)
		}
	}
	return data, nil
}

func exactInt(from reflect.Type, data any) (any, error) {
	v := reflect.ValueOf(data)
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return data, nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("must be a whole number, got %v", data)
		}
		return int64(f), nil
	case reflect.String:
		s := v.String()
		if !decimal.MatchString(s) {
			return nil, fmt.Errorf("must be a decimal integer, got %q", s)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("must be a decimal integer, got %q", s)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("must be an integer, got %s %v", from.Kind(), data)
	}
}

// fieldErrors flattens the joined errors mapstructure returns into one
// InvalidFieldError per offending key.
func fieldErrors(site string, err error) error {
	var mErr *multierror.Error
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		var decodeErr *mapstructure.DecodeError
		if errors.As(err, &decodeErr) {
			mErr = multierror.Append(mErr, &InvalidFieldError{
				Site:   site,
				Key:    decodeErr.Name(),
				Reason: fmt.Sprintf("could not be decoded: %v", decodeErr.Unwrap()),
			})
			return
		}
		mErr = multierror.Append(mErr, fmt.Errorf("%s: %w: %w", site, ErrInvalidField, err))
	}
	walk(err)
	return mErr.ErrorOrNil()
}

func withoutNulls(config map[string]any) map[string]any {
	out := make(map[string]any, len(config))
	for k, v := range config {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
