package bind

import "optbind/internal/match"

// HelpOption is the synthetic flag every schema carries. Contracts may not
// declare it.
const HelpOption = "help"

// OptionName derives the option name of an accessor. flag reports whether
// the accessor returns a boolean.
func OptionName(accessor string, flag bool) string {
	name := accessor

	switch {
	case flag && match.HasWordPrefix(name, "Is"):
		name = name[len("Is"):]
	case match.HasWordPrefix(name, "Get"):
		name = name[len("Get"):]
	}

	return match.LowerLeadingWord(name)
}
