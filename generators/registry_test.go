package generators

import (
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/darianmavgo/foodmart/generators/common"
)

type stubProvider struct{ location string }

func (s stubProvider) OpenResource(tableName string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("id\n1\n")), nil
}

type stubDriver struct{}

func (stubDriver) Open(location string, config *common.ProviderConfig) (common.ResourceProvider, error) {
	return stubProvider{location: location}, nil
}

func TestRegisterAndOpen(t *testing.T) {
	Register("stub-registry-test", stubDriver{})

	if !slices.Contains(Drivers(), "stub-registry-test") {
		t.Fatalf("Drivers() = %v, missing stub", Drivers())
	}

	p, err := Open("stub-registry-test", "somewhere", nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if sp, ok := p.(stubProvider); !ok || sp.location != "somewhere" {
		t.Errorf("unexpected provider %#v", p)
	}

	if _, err := Open("no-such-driver", "x", nil); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub-dup-test", stubDriver{})

	for name, fn := range map[string]func(){
		"duplicate": func() { Register("stub-dup-test", stubDriver{}) },
		"nil":       func() { Register("stub-nil-test", nil) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}
