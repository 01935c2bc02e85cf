package helpers

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"stashit.dev/stashit/internal/actions"
)

// IndexFlagError is a cobra flag error func for commands taking stash indexes.
// A negative number such as "-1" is parsed by pflag as an unknown shorthand
// flag; it is reported as an invalid stash index instead.
func IndexFlagError(_ *cobra.Command, err error) error {
	var notExist *pflag.NotExistError
	if !errors.As(err, &notExist) {
		return err
	}

	shorthands := notExist.GetSpecifiedShortnames()
	if shorthands == "" || strings.Trim(shorthands, "0123456789") != "" {
		return err
	}

	_, indexErr := actions.ParseIndex("-" + shorthands)
	return indexErr
}
