//go:build tools

package logtime

import (
	_ "github.com/dmarkham/enumer"
)
