package profile

import _ "embed"

//go:embed profiles/default.yaml
var defaultYAML []byte

//go:embed profiles/strong.yaml
var strongYAML []byte

//go:embed profiles/alnum.yaml
var alnumYAML []byte

//go:embed profiles/pin.yaml
var pinYAML []byte

//go:embed profiles/hex.yaml
var hexYAML []byte

// builtinProfiles maps profile names to their embedded YAML content.
var builtinProfiles = map[string][]byte{
	"default": defaultYAML,
	"strong":  strongYAML,
	"alnum":   alnumYAML,
	"pin":     pinYAML,
	"hex":     hexYAML,
}
