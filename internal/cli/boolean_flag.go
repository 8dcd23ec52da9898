package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	tolerantBooleanTypeName       = "bool"
	tolerantBooleanTrueLiteral    = "true"
	tolerantBooleanAcceptedValues = "true, false, yes, no, on, off, 1, 0"
	tolerantBooleanErrorFormat    = "invalid boolean value %q for --%s; accepted values: %s"
)

var tolerantBooleanLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// tolerantBoolean is a flag value accepting yes/no style literals.
// A value is only taken from the "--flag=value" form; a following word stays a positional argument.
type tolerantBoolean struct {
	target   *bool
	flagName string
}

func (value *tolerantBoolean) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = tolerantBooleanTrueLiteral
	}
	parsed, known := tolerantBooleanLiterals[normalized]
	if !known {
		return fmt.Errorf(tolerantBooleanErrorFormat, input, value.flagName, tolerantBooleanAcceptedValues)
	}
	*value.target = parsed
	return nil
}

func (value *tolerantBoolean) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *tolerantBoolean) Type() string {
	return tolerantBooleanTypeName
}

// registerBooleanFlag adds a tolerant boolean flag; the bare flag (long or shorthand) means true.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	*target = defaultValue
	flagSet.VarP(&tolerantBoolean{target: target, flagName: name}, name, shorthand, usage)
	if registered := flagSet.Lookup(name); registered != nil {
		registered.DefValue = strconv.FormatBool(defaultValue)
		registered.NoOptDefVal = tolerantBooleanTrueLiteral
	}
}
