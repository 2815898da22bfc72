package build

import "fmt"

// Overridden at link time, for example:
// -ldflags "-X github.com/bornholm/zerohost/internal/build.ShortVersion=1.2.0"
var (
	ShortVersion = "unknown"
	GitRef       = "unknown"
	BuildDate    = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s, %s)", ShortVersion, GitRef, BuildDate)
