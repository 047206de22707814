package catalog

import _ "embed"

//go:embed msgids.txt
var builtinData string
