package model

import "errors"

var ErrLeadDoesNotExist = errors.New("lead does not exist")
