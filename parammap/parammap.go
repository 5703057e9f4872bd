package parammap

const (
	// IdentityServiceURL is the authentication endpoint of the identity service.
	IdentityServiceURL = "https://identity.service.consul/authenticate"

	// DefaultTTL is the requested token lifetime in seconds (24 hours).
	DefaultTTL = 86400

	// PublicProvider selects the identity service's public authentication backend.
	PublicProvider = "public"
)

// Credentials holds the user supplied username and password for one mapping call.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RequestBody is the payload posted to the identity service.
type RequestBody struct {
	TTL       int      `json:"ttl"`
	Providers []string `json:"providers"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
}

// RequestDescriptor is the outbound authentication request built for accepted credentials.
type RequestDescriptor struct {
	URL  string      `json:"url"`
	Body RequestBody `json:"body"`
}

// Mapper turns credentials into an authentication request or a rejection.
type Mapper interface {
	Map(username, password string) Result
}

// MapperFunc adapts an ordinary function to the Mapper interface.
type MapperFunc func(username, password string) Result

func (f MapperFunc) Map(username, password string) Result {
	return f(username, password)
}

var (
	_ Mapper = Rule{}
	_ Mapper = MapperFunc(nil)
)

// Rule holds the fixed values a mapping rule puts into every request.
type Rule struct {
	URL       string
	TTL       int
	Providers []string
}

// DefaultRule returns the rule used by Map.
func DefaultRule() Rule {
	return Rule{
		URL:       IdentityServiceURL,
		TTL:       DefaultTTL,
		Providers: []string{PublicProvider},
	}
}

// Map rejects the credentials only when both username and password are empty.
// A single empty field still produces a request carrying the empty value.
func (r Rule) Map(username, password string) Result {
	if username == "" && password == "" {
		return Rejected()
	}

	return Accepted(RequestDescriptor{
		URL: r.URL,
		Body: RequestBody{
			TTL:       r.TTL,
			Providers: append([]string(nil), r.Providers...),
			Username:  username,
			Password:  password,
		},
	})
}

// MapCredentials applies the rule to a Credentials value.
func (r Rule) MapCredentials(c Credentials) Result {
	return r.Map(c.Username, c.Password)
}

// Map applies DefaultRule to username and password.
func Map(username, password string) Result {
	return DefaultRule().Map(username, password)
}

// MapCredentials applies DefaultRule to c.
func MapCredentials(c Credentials) Result {
	return DefaultRule().MapCredentials(c)
}
