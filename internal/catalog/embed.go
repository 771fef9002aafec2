package catalog

import _ "embed"

//go:embed data/tricks.yaml
var defaultCatalog []byte
