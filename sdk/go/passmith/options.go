package passmith

// Option configures a Client at creation time.
type Option func(*clientConfig)

type clientConfig struct {
	profileName string
	configPath  string
}

// WithProfile starts the client from a named profile (e.g., "strong").
func WithProfile(name string) Option {
	return func(c *clientConfig) { c.profileName = name }
}

// WithConfig sets the path to a defaults YAML file.
func WithConfig(path string) Option {
	return func(c *clientConfig) { c.configPath = path }
}

// GenOption adjusts the policy for a single Generate or Estimate call.
type GenOption func(*genConfig)

type genConfig struct {
	length      *int
	count       *int
	exclude     *string
	noAmbiguous *bool
	symbols     *bool
}

// Length sets the password length.
func Length(n int) GenOption {
	return func(g *genConfig) { g.length = &n }
}

// Count sets how many passwords one call returns.
func Count(n int) GenOption {
	return func(g *genConfig) { g.count = &n }
}

// Exclude removes the given characters from every class.
func Exclude(chars string) GenOption {
	return func(g *genConfig) { g.exclude = &chars }
}

// NoAmbiguous removes visually ambiguous glyphs (0 O 1 l I, pipe, quotes).
func NoAmbiguous() GenOption {
	return func(g *genConfig) {
		v := true
		g.noAmbiguous = &v
	}
}

// Symbols toggles the symbol class. Disabling it also drops its minimum.
func Symbols(enabled bool) GenOption {
	return func(g *genConfig) { g.symbols = &enabled }
}
