package schema

import "errors"

// ErrMigrate возвращается, когда не удалось применить схему
var ErrMigrate = errors.New("schema: failed to apply migration")
