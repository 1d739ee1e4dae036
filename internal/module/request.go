package module

import "strings"

// Request is a normalized set of module tokens split into enabled and disabled ids.
// A token prefixed with `!` or `-` disables the module. Disabling always wins.
type Request struct {
	enabled  Set
	disabled Set
}

// NewRequest builds a request from raw tokens. Blank tokens are ignored.
func NewRequest(tokens ...string) *Request {
	req := &Request{
		enabled:  NewSet(),
		disabled: NewSet(),
	}

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if id, ok := disabledID(token); ok {
			req.disabled.Add(id)
			continue
		}

		req.enabled.Add(token)
	}

	req.enabled.RemoveSet(req.disabled)

	return req
}

// NewRequestFromSet builds a request enabling every id of the set.
func NewRequestFromSet(ids Set) *Request {
	return &Request{
		enabled:  ids.Clone(),
		disabled: NewSet(),
	}
}

// Enabled returns a copy of the enabled ids.
func (req *Request) Enabled() Set {
	return req.enabled.Clone()
}

// Disabled returns a copy of the disabled ids.
func (req *Request) Disabled() Set {
	return req.disabled.Clone()
}

// Combine returns the union of every request's enabled ids minus the union of every disabled id.
func Combine(reqs ...*Request) Set {
	enabled, disabled := NewSet(), NewSet()

	for _, req := range reqs {
		if req == nil {
			continue
		}

		enabled.AddSet(req.enabled)
		disabled.AddSet(req.disabled)
	}

	enabled.RemoveSet(disabled)

	return enabled
}

func disabledID(token string) (string, bool) {
	if id, ok := strings.CutPrefix(token, "!"); ok {
		return id, true
	}

	if id, ok := strings.CutPrefix(token, "-"); ok {
		return id, true
	}

	return "", false
}
