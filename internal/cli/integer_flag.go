package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	integerFlagTypeName          = "int"
	integerFlagInvalidValueLabel = "invalid integer value"
	integerFlagBelowMinimumLabel = "value below minimum"
	unsetIntegerFlagLiteral      = "unset"
)

// boundedIntegerFlagValue parses an integer and rejects values below minimum.
type boundedIntegerFlagValue struct {
	target  *int
	isSet   *bool
	minimum int
	flagKey string
}

func (value *boundedIntegerFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf("%s %q", integerFlagInvalidValueLabel, input)
	}
	parsed, parseError := strconv.Atoi(strings.TrimSpace(input))
	if parseError != nil {
		return fmt.Errorf("%s %q for --%s", integerFlagInvalidValueLabel, input, value.flagKey)
	}
	if parsed < value.minimum {
		return fmt.Errorf("%s %d for --%s: must be at least %d", integerFlagBelowMinimumLabel, parsed, value.flagKey, value.minimum)
	}
	*value.target = parsed
	if value.isSet != nil {
		*value.isSet = true
	}
	return nil
}

func (value *boundedIntegerFlagValue) String() string {
	if value == nil || value.target == nil {
		return unsetIntegerFlagLiteral
	}
	if value.isSet != nil && !*value.isSet {
		return unsetIntegerFlagLiteral
	}
	return strconv.Itoa(*value.target)
}

func (value *boundedIntegerFlagValue) Type() string {
	return integerFlagTypeName
}

// registerBoundedIntegerFlag registers a shorthand integer flag that fails parsing below minimum.
// isSet may be nil when the flag always carries a default.
func registerBoundedIntegerFlag(flagSet *pflag.FlagSet, target *int, isSet *bool, name string, shorthand string, minimum int, usage string) {
	if flagSet == nil || target == nil {
		return
	}
	flagValue := &boundedIntegerFlagValue{
		target:  target,
		isSet:   isSet,
		minimum: minimum,
		flagKey: name,
	}
	flagSet.VarP(flagValue, name, shorthand, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = flagValue.String()
	}
}
