package domain

import "errors"

var ErrSheetNotFound = errors.New("target spreadsheet not found")
