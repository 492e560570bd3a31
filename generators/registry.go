package generators

import (
	"fmt"
	"sort"
	"sync"

	"github.com/darianmavgo/foodmart/generators/common"
)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]common.Driver)
)

// Register makes a resource driver available by the provided name.
// If Register is called twice with the same name or if driver is nil, it panics.
func Register(name string, driver common.Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("generators: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("generators: Register called twice for driver " + name)
	}
	drivers[name] = driver
}

// Open opens a resource provider by driver name and location.
func Open(driverName, location string, config *common.ProviderConfig) (common.ResourceProvider, error) {
	driversMu.RLock()
	driver, ok := drivers[driverName]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("generators: unknown driver %q (forgotten import?)", driverName)
	}
	return driver.Open(location, config)
}

// Drivers returns a sorted list of the names of the registered drivers.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	list := make([]string, 0, len(drivers))
	for name := range drivers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
