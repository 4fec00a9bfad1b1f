package nets

import (
	"bytes"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for _, c := range []struct {
			addr  string
			local bool
		}{
			{"127.0.0.1:10000", true},
			{"[::1]:80", true},
			{"192.168.1.2:80", true},
			{"8.8.8.8:80", false},
			{":8080", false},
			{"0.0.0.0:8080", false},
		} {
			yes, err := isLocalAddr(t.Context(), c.addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != c.local {
				t.Fatalf("%s: got %v", c.addr, yes)
			}
		}

		if _, err := isLocalAddr(t.Context(), "no port"); err == nil {
			t.Fatal("expected error")
		}
	})
}
