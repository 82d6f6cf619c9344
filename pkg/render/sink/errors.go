package sink

import "github.com/matzehuels/wordtower/pkg/errors"

var errMissingLayout = errors.New(errors.ErrCodeInvalidInput, "document has no layout")
