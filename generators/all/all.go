package all

import (
	// Import all the drivers so they register themselves
	_ "github.com/darianmavgo/foodmart/generators/excel"
	_ "github.com/darianmavgo/foodmart/generators/filesystem"
	_ "github.com/darianmavgo/foodmart/generators/zip"
)
