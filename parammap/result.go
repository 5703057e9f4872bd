package parammap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidResult is returned when decoding something that is neither false nor a request descriptor.
var ErrInvalidResult = errors.New("invalid mapping result")

const redactedPassword = "*REDACTED*"

// Result is the outcome of a mapping call: either rejected, or accepted with a descriptor.
// The zero value is a rejection.
type Result struct {
	accepted   bool
	descriptor RequestDescriptor
}

// Rejected returns a result telling the host not to call the identity service.
func Rejected() Result {
	return Result{}
}

// Accepted returns a result carrying d.
func Accepted(d RequestDescriptor) Result {
	return Result{accepted: true, descriptor: d}
}

func (r Result) IsRejected() bool {
	return !r.accepted
}

// Descriptor returns the request descriptor and true, or the zero descriptor and false for a rejection.
func (r Result) Descriptor() (RequestDescriptor, bool) {
	if !r.accepted {
		return RequestDescriptor{}, false
	}
	return r.descriptor, true
}

func (r Result) String() string {
	if !r.accepted {
		return "rejected"
	}
	return fmt.Sprintf("accepted(%s, user=%q)", r.descriptor.URL, r.descriptor.Body.Username)
}

// MarshalJSON renders a rejection as false and an acceptance as the descriptor object.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.accepted {
		return []byte("false"), nil
	}
	return json.Marshal(r.descriptor)
}

// UnmarshalJSON accepts false or a descriptor object.
func (r *Result) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("false")) {
		*r = Rejected()
		return nil
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: %s", ErrInvalidResult, trimmed)
	}

	var d RequestDescriptor
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}
	if d.URL == "" {
		return fmt.Errorf("%w: missing url", ErrInvalidResult)
	}
	*r = Accepted(d)
	return nil
}

// Encode returns the JSON payload the host posts to the identity service.
func (b RequestBody) Encode() ([]byte, error) {
	return json.Marshal(b)
}

// Redacted returns a copy of b with a non-empty password masked, for logging.
// An empty password stays empty so the log shows that none was sent.
func (b RequestBody) Redacted() RequestBody {
	out := b
	out.Providers = append([]string(nil), b.Providers...)
	if out.Password != "" {
		out.Password = redactedPassword
	}
	return out
}

// Redacted returns a copy of r whose descriptor body has the password masked.
func (r Result) Redacted() Result {
	if !r.accepted {
		return r
	}
	d := r.descriptor
	d.Body = d.Body.Redacted()
	return Accepted(d)
}
