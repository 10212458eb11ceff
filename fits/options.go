package fits

import "github.com/arloliu/astrofits/internal/options"

type config struct {
	headersOnly bool
}

// Option configures how Open scans the file.
type Option = options.Option[*config]

// ReadHeadersOnly makes Open scan headers and record data offsets without
// materializing any data unit. Data units load later through ReadData.
func ReadHeadersOnly() Option {
	return options.NoError(func(c *config) {
		c.headersOnly = true
	})
}
