package presenter

import (
	"errors"
	"time"
)

var (
	timeZero = time.Unix(0, 0)
	errBoom  = errors.New("boom")
)
