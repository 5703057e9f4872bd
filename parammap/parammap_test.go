package parammap_test

import (
	"sync"
	"testing"

	"github.com/jrsteele09/go-auth-param-map/parammap"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("username and password", func(t *testing.T) {
		res := parammap.Map("alice", "secret")
		d, ok := res.Descriptor()
		require.True(t, ok)
		require.False(t, res.IsRejected())
		require.Equal(t, parammap.RequestDescriptor{
			URL: "https://identity.service.consul/authenticate",
			Body: parammap.RequestBody{
				TTL:       86400,
				Providers: []string{"public"},
				Username:  "alice",
				Password:  "secret",
			},
		}, d)
	})

	t.Run("both empty is rejected", func(t *testing.T) {
		res := parammap.Map("", "")
		require.True(t, res.IsRejected())
		d, ok := res.Descriptor()
		require.False(t, ok)
		require.Equal(t, parammap.RequestDescriptor{}, d)
	})

	t.Run("empty password still accepted", func(t *testing.T) {
		d, ok := parammap.Map("alice", "").Descriptor()
		require.True(t, ok)
		require.Equal(t, "alice", d.Body.Username)
		require.Equal(t, "", d.Body.Password)
	})

	t.Run("empty username still accepted", func(t *testing.T) {
		d, ok := parammap.Map("", "secret").Descriptor()
		require.True(t, ok)
		require.Equal(t, "", d.Body.Username)
		require.Equal(t, "secret", d.Body.Password)
	})

	t.Run("whitespace is not empty", func(t *testing.T) {
		require.False(t, parammap.Map(" ", "").IsRejected())
		require.False(t, parammap.Map("", "\t").IsRejected())
	})
}

func TestMap_FixedFields(t *testing.T) {
	inputs := [][2]string{
		{"alice", "secret"},
		{"bob", ""},
		{"", "hunter2"},
		{"üñîçødé", "pa ss\nword"},
		{"a\x00b", `"quoted"`},
	}

	for _, in := range inputs {
		d, ok := parammap.Map(in[0], in[1]).Descriptor()
		require.True(t, ok, "input %q", in)
		require.Equal(t, parammap.IdentityServiceURL, d.URL)
		require.Equal(t, parammap.DefaultTTL, d.Body.TTL)
		require.Equal(t, []string{parammap.PublicProvider}, d.Body.Providers)
		require.Equal(t, in[0], d.Body.Username)
		require.Equal(t, in[1], d.Body.Password)
	}
}

func TestMap_Deterministic(t *testing.T) {
	first := parammap.Map("alice", "secret")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, parammap.Map("alice", "secret"))
	}
	require.Equal(t, parammap.Map("", ""), parammap.Map("", ""))
}

func TestMap_ProvidersNotShared(t *testing.T) {
	a, _ := parammap.Map("alice", "secret").Descriptor()
	a.Body.Providers[0] = "internal"

	b, _ := parammap.Map("alice", "secret").Descriptor()
	require.Equal(t, []string{"public"}, b.Body.Providers)

	rule := parammap.DefaultRule()
	c, _ := rule.Map("carol", "x").Descriptor()
	c.Body.Providers[0] = "internal"
	require.Equal(t, []string{"public"}, rule.Providers)
}

func TestMap_Concurrent(t *testing.T) {
	want := parammap.Map("alice", "secret")

	var wg sync.WaitGroup
	results := make([]parammap.Result, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = parammap.Map("alice", "secret")
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		require.Equal(t, want, res)
	}
}

func TestMapCredentials(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		res := parammap.MapCredentials(parammap.Credentials{Username: "alice", Password: "secret"})
		require.Equal(t, parammap.Map("alice", "secret"), res)
	})

	t.Run("rejected", func(t *testing.T) {
		require.True(t, parammap.MapCredentials(parammap.Credentials{}).IsRejected())
	})
}

func TestRule_Map(t *testing.T) {
	rule := parammap.Rule{
		URL:       "http://localhost:9000/authenticate",
		TTL:       60,
		Providers: []string{"ldap", "public"},
	}

	d, ok := rule.Map("alice", "secret").Descriptor()
	require.True(t, ok)
	require.Equal(t, "http://localhost:9000/authenticate", d.URL)
	require.Equal(t, 60, d.Body.TTL)
	require.Equal(t, []string{"ldap", "public"}, d.Body.Providers)

	require.True(t, rule.Map("", "").IsRejected())
}

func TestMapperFunc(t *testing.T) {
	var calls int
	var m parammap.Mapper = parammap.MapperFunc(func(username, password string) parammap.Result {
		calls++
		return parammap.Rejected()
	})

	require.True(t, m.Map("alice", "secret").IsRejected())
	require.Equal(t, 1, calls)

	m = parammap.DefaultRule()
	require.False(t, m.Map("alice", "secret").IsRejected())
}
