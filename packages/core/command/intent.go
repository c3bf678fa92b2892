package command

type Verb int

const (
	VerbGet Verb = iota
	VerbPost
)

func (v Verb) String() string {
	switch v {
	case VerbGet:
		return "GET"
	case VerbPost:
		return "POST"
	default:
		return "UNKNOWN"
	}
}

// ParseVerb maps a subcommand name to its HTTP verb. Names are matched
// exactly, as the CLI does.
func ParseVerb(name string) (Verb, bool) {
	switch name {
	case "get":
		return VerbGet, true
	case "post":
		return VerbPost, true
	}
	return 0, false
}

type KeyValue struct {
	Key   string
	Value string
}

// Intent is a validated request: the URL has a scheme and a host, and Body
// is empty for GET.
type Intent struct {
	Verb Verb
	URL  string
	Body []KeyValue
}

// BodyMap collects the body pairs into a mapping. When a key repeats, the
// last occurrence wins.
func (i *Intent) BodyMap() map[string]string {
	m := make(map[string]string, len(i.Body))
	for _, kv := range i.Body {
		m[kv.Key] = kv.Value
	}
	return m
}
