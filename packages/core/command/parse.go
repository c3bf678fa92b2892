package command

import (
	neturl "net/url"
	"strings"
)

// ParseArguments builds an Intent from positional arguments. argv[0] is the
// subcommand (get or post), argv[1] the URL and, for post, the remaining
// arguments are key=value body pairs.
func ParseArguments(argv []string) (*Intent, error) {
	if len(argv) == 0 {
		return nil, usageError("missing subcommand (expected get or post)")
	}

	verb, ok := ParseVerb(argv[0])
	if !ok {
		return nil, usageError("unknown subcommand %q (expected get or post)", argv[0])
	}

	args := argv[1:]
	if len(args) == 0 {
		return nil, usageError("%s requires a URL", strings.ToLower(verb.String()))
	}
	if verb == VerbGet && len(args) > 1 {
		return nil, usageError("get accepts exactly one URL, got %d arguments", len(args))
	}

	url, err := ValidateURL(args[0])
	if err != nil {
		return nil, err
	}

	intent := &Intent{Verb: verb, URL: url}
	for _, tok := range args[1:] {
		kv, err := ParseKeyValue(tok)
		if err != nil {
			return nil, err
		}
		intent.Body = append(intent.Body, kv)
	}

	return intent, nil
}

// ValidateURL checks that s is an absolute http or https URL with a host.
func ValidateURL(s string) (string, error) {
	u, err := neturl.Parse(s)
	if err != nil {
		return "", &ArgumentError{Kind: ErrInvalidURL, Arg: s, Message: err.Error()}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &ArgumentError{
			Kind:    ErrInvalidURL,
			Arg:     s,
			Message: "URL must start with http:// or https://",
		}
	}

	if u.Hostname() == "" {
		return "", &ArgumentError{Kind: ErrInvalidURL, Arg: s, Message: "URL must have a host"}
	}

	return s, nil
}

// ParseKeyValue splits s on its first '='. Anything after that, including
// further '=' characters, is the value.
func ParseKeyValue(s string) (KeyValue, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return KeyValue{}, &ArgumentError{Kind: ErrInvalidKeyValuePair, Arg: s, Message: "expected key=value"}
	}
	if key == "" {
		return KeyValue{}, &ArgumentError{Kind: ErrInvalidKeyValuePair, Arg: s, Message: "key must not be empty"}
	}
	return KeyValue{Key: key, Value: value}, nil
}
